package dedup

// Overlap counts the words of a that appear anywhere in b, divided by the
// longer of the two lengths.
//
// NOTE: this is not Jaccard (intersection over union). Repeated words in a
// each count, so Overlap(a, b) and Overlap(b, a) can differ when the lengths
// differ. Existing warnings were produced with this measure; keep it.
func Overlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setB := make(map[string]struct{}, len(b))
	for _, w := range b {
		setB[w] = struct{}{}
	}
	matches := 0
	for _, w := range a {
		if _, ok := setB[w]; ok {
			matches++
		}
	}
	return float64(matches) / float64(max(len(a), len(b)))
}
