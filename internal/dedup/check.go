package dedup

import (
	"fmt"
	"strings"
)

// CheckCorpus compares every unordered pair of posts in load order and
// returns the pairs above the threshold.
func CheckCorpus(cfg Config) []Result {
	return CheckDocuments(LoadCorpus(cfg), cfg.OverlapThreshold)
}

// CheckDocuments is CheckCorpus over an already loaded corpus.
func CheckDocuments(docs []Document, threshold float64) []Result {
	results := []Result{}
	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			overlap := Overlap(docs[i].Words, docs[j].Words)
			if overlap > threshold {
				results = append(results, Result{
					PostA:      docs[i].DisplayName(),
					PostB:      docs[j].DisplayName(),
					OverlapPct: percent(overlap),
				})
			}
		}
	}
	return results
}

// CheckCandidate compares an unpublished post body against every post on
// disk. The candidate is always PostA.
func CheckCandidate(cfg Config, body, title string) []Result {
	words := Tokenize(body, cfg.StopWords)
	results := []Result{}
	for _, doc := range LoadCorpus(cfg) {
		overlap := Overlap(words, doc.Words)
		if overlap > cfg.OverlapThreshold {
			results = append(results, Result{
				PostA:      title,
				PostB:      doc.DisplayName(),
				OverlapPct: percent(overlap),
			})
		}
	}
	return results
}

// Summary renders results the way the standalone checker prints them.
func Summary(results []Result) string {
	if len(results) == 0 {
		return "All posts unique — no duplicates detected.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d potential duplicate(s):\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&sb, "  %s\n", r)
	}
	return sb.String()
}
