package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	stop := DefaultStopWords()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercases and splits", "Apple BANANA cherry", []string{"apple", "banana", "cherry"}},
		{"punctuation separates", "go-routines, channels!and:select", []string{"routines", "channels", "select"}},
		{"short tokens dropped", "an ox is big but elephants are bigger", []string{"big", "elephants", "bigger"}},
		{"stop-words dropped", "the cat and the hat", []string{"cat", "hat"}},
		{"duplicates kept", "sync sync sync", []string{"sync", "sync", "sync"}},
		{"digits kept", "go 1.24 shipped in 2025", []string{"shipped", "2025"}},
		{"non-ascii is a separator", "café naïve", []string{"caf"}},
		{"dotted capital i splits", "İstanbul İzmir", []string{"stanbul", "zmir"}},
		{"mixed whitespace", "\tone\n\ntwo  three\r\n", []string{"two", "three"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text, stop))
		})
	}
}

func TestTokenizeUsesInjectedStopWords(t *testing.T) {
	stop := map[string]struct{}{"golang": {}}
	assert.Equal(t, []string{"the", "gopher"}, Tokenize("the golang gopher", stop))
	assert.Equal(t, []string{"the", "golang", "gopher"}, Tokenize("the golang gopher", nil))
}

func TestDefaultStopWordsIsACopy(t *testing.T) {
	a := DefaultStopWords()
	delete(a, "the")
	_, ok := DefaultStopWords()["the"]
	assert.True(t, ok)
}
