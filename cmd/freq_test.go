package cmd

import (
	"testing"

	"cipherclimb/internal/preprocess"
)

func TestFrequencyCountsOverLatinText(test *testing.T) {
	text := preprocess.Latin().Process("D'M D'LL")

	counts := make(map[string]int)
	for i := 0; i+1 <= len(text); i++ {
		counts[text[i:i+1]]++
	}

	expected := map[string]int{"D": 2, "M": 1, "L": 2}
	for gram, want := range expected {
		if counts[gram] != want {
			test.Errorf("expected %d occurrences of %q, got %d", want, gram, counts[gram])
		}
	}
}

func TestFrequencyTotalMatchesLetterCount(test *testing.T) {
	text := preprocess.Latin().Process("D'M D'LL")
	if len(text) != 5 {
		test.Errorf("expected 5 letters after preprocessing, got %d (%q)", len(text), text)
	}
}
