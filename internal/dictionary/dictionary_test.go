package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsExactWords(t *testing.T) {
	d := New()
	d.Add("CAT")
	d.Add("CATER")
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("CATER"))
	assert.False(t, d.Contains("CA"))
	assert.False(t, d.Contains("DOG"))
	assert.Equal(t, 2, d.Size())
}

func TestAddIsIdempotentForSize(t *testing.T) {
	d := New()
	d.Add("CAT")
	d.Add("CAT")
	assert.Equal(t, 1, d.Size())
}

func TestFindWordsReportsOverlappingMatches(t *testing.T) {
	d := New()
	d.Add("CAT")
	d.Add("CATER")
	d.Add("AT")

	spans := FindWords("CATERPILLAR", d)
	seen := map[Span]bool{}
	for _, s := range spans {
		seen[s] = true
	}
	assert.True(t, seen[Span{Start: 0, End: 3}])  // CAT
	assert.True(t, seen[Span{Start: 0, End: 5}])  // CATER
	assert.True(t, seen[Span{Start: 1, End: 3}])  // AT
}

func TestFindWordsRespectsMaxWordLen(t *testing.T) {
	d := New()
	longWord := "ABCDEFGHIJK" // 11 runes, longer than MaxWordLen
	d.Add(longWord)
	spans := FindWords(longWord, d)
	assert.Empty(t, spans)
}
