package dedup

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text, turns everything except a-z, 0-9 and whitespace
// into separators, and keeps words longer than two characters that are not
// stop-words. Repeats are kept in order.
func Tokenize(text string, stopWords map[string]struct{}) []string {
	// İ lowercases to i plus a combining dot, which then splits the word.
	text = strings.ReplaceAll(text, "\u0130", "i\u0307")

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}
