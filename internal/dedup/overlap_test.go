package dedup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	stop := DefaultStopWords()
	words := func(s string) []string { return Tokenize(s, stop) }

	t.Run("disjoint vocabulary", func(t *testing.T) {
		assert.Equal(t, 0.0, Overlap(words("apple banana cherry"), words("kiwi mango papaya")))
	})

	t.Run("identical documents", func(t *testing.T) {
		body := "channels select goroutines mutexes waitgroups"
		assert.Equal(t, 1.0, Overlap(words(body), words(body)))
	})

	t.Run("empty side", func(t *testing.T) {
		assert.Equal(t, 0.0, Overlap(nil, words("apple banana")))
		assert.Equal(t, 0.0, Overlap(words("apple banana"), nil))
		assert.Equal(t, 0.0, Overlap(nil, nil))
	})

	t.Run("stop-words and short tokens behave as empty", func(t *testing.T) {
		noise := words("the and for an is a of to it")
		assert.Empty(t, noise)
		assert.Equal(t, 0.0, Overlap(noise, words("the apple and banana")))
	})

	t.Run("repeated words count on the iterated side", func(t *testing.T) {
		a := words("apple banana cherry date apple banana cherry date")
		b := words("apple banana cherry elderberry")
		assert.Len(t, a, 8)
		assert.Len(t, b, 4)
		assert.InDelta(t, 0.75, Overlap(a, b), 1e-9)
		// b iterated: apple, banana, cherry match out of max(4, 8).
		assert.InDelta(t, 0.375, Overlap(b, a), 1e-9)
	})

	t.Run("repeat calls agree", func(t *testing.T) {
		a := strings.Fields("alpha beta gamma delta")
		b := strings.Fields("beta gamma epsilon")
		assert.Equal(t, Overlap(a, b), Overlap(a, b))
		assert.InDelta(t, 0.5, Overlap(a, b), 1e-9)
	})
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 75, percent(0.75))
	assert.Equal(t, 67, percent(2.0/3.0))
	assert.Equal(t, 100, percent(1))
	assert.Equal(t, 0, percent(0))
}
