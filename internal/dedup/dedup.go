// Package dedup flags blog posts whose wording overlaps too much with other posts.
package dedup

import (
	"fmt"
	"math"
)

// DefaultThreshold is the overlap a pair must exceed to be reported.
const DefaultThreshold = 0.5

var defaultStopWords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all",
	"can", "her", "was", "one", "our", "out", "has", "have",
	"this", "that", "with", "from", "they", "been", "said",
	"each", "which", "their", "will", "other", "about", "many",
	"then", "them", "these", "some", "would", "make", "like",
	"into", "just", "over", "such", "take", "than", "very",
	"what", "when", "where", "how", "who", "why", "more",
	"also", "here", "there", "could", "should", "still",
	"well", "back", "only", "even", "most", "after", "before",
}

// DefaultStopWords returns a fresh copy of the built-in stop-word set.
func DefaultStopWords() map[string]struct{} {
	m := make(map[string]struct{}, len(defaultStopWords))
	for _, w := range defaultStopWords {
		m[w] = struct{}{}
	}
	return m
}

// Config is passed to every check. Nothing is cached between calls.
type Config struct {
	StopWords        map[string]struct{}
	OverlapThreshold float64
	SourceDir        string
}

// DefaultConfig returns the stock stop-words and threshold for dir.
func DefaultConfig(dir string) Config {
	return Config{
		StopWords:        DefaultStopWords(),
		OverlapThreshold: DefaultThreshold,
		SourceDir:        dir,
	}
}

// Document is one post loaded from disk.
type Document struct {
	Filename string
	Title    string
	Body     string
	Words    []string
}

// DisplayName is the title, or the filename when the post has none.
func (d Document) DisplayName() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Filename
}

// Result is a pair of posts above the overlap threshold.
type Result struct {
	PostA      string `json:"postA"`
	PostB      string `json:"postB"`
	OverlapPct int    `json:"overlapPct"`
}

func (r Result) String() string {
	return fmt.Sprintf("\"%s\" <-> \"%s\" — %d%% overlap", r.PostA, r.PostB, r.OverlapPct)
}

func percent(overlap float64) int {
	return int(math.Round(overlap * 100))
}
