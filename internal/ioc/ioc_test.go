package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cipherclimb/internal/alphabet"
)

func TestIndexOfCoincidenceOfEvenlySpreadSample(t *testing.T) {
	// AABBCCDD over a 4-symbol alphabet: every symbol appears twice, so
	// the statistic is 4 * (4 * 2*1) / (8 * 7) = 4/7. Drawing without
	// replacement keeps a short evenly spread sample below 1.0.
	symbols := []alphabet.Symbol{0, 0, 1, 1, 2, 2, 3, 3}
	v := IndexOfCoincidence(symbols, 4)
	assert.InDelta(t, 4.0/7.0, v, 1e-9)
}

func TestIndexOfCoincidenceOfSingleSymbolIsMaximal(t *testing.T) {
	symbols := []alphabet.Symbol{0, 0, 0, 0}
	v := IndexOfCoincidence(symbols, 4)
	assert.InDelta(t, 4.0, v, 1e-9)
}

func TestIndexOfCoincidenceOfTooFewSymbolsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, IndexOfCoincidence([]alphabet.Symbol{0}, 4))
	assert.Equal(t, 0.0, IndexOfCoincidence(nil, 4))
}

func TestEstimatePeriodTerminatesWithinBounds(t *testing.T) {
	// A uniformly spread stream has no strongly periodic structure; the
	// search must still terminate, bounded by len(symbols) (the guard
	// in EstimatePeriod).
	var symbols []alphabet.Symbol
	for i := 0; i < 40; i++ {
		symbols = append(symbols, alphabet.Symbol(i%26))
	}
	period := EstimatePeriod(symbols, 26, DefaultThreshold)
	assert.GreaterOrEqual(t, period, 1)
	assert.LessOrEqual(t, period, len(symbols))
}
