package climb

import (
	"math"
	"math/rand"
)

// Default temperature and threshold from original_source/src/main.rs.
const (
	DefaultTemperature = 3500.0
	DefaultThreshold   = 0.0085
)

// LavyAccept is LavyAcceptWith wired to math/rand, using the constants
// original_source/src/main.rs runs the Zodiac Z408 search with. This is
// the CLI default (SPEC_FULL.md, "OPEN QUESTION DECISIONS").
func LavyAccept(prev, next float64) bool {
	return LavyAcceptWith(DefaultTemperature, DefaultThreshold, rand.Float64)(prev, next)
}

// MetropolisAccept is MetropolisAcceptWith wired to math/rand at the
// same default temperature, offered for comparison against LavyAccept.
func MetropolisAccept(prev, next float64) bool {
	return MetropolisAcceptWith(DefaultTemperature, rand.Float64)(prev, next)
}

// probability reports whether a uniform draw from [0,1) via draw falls
// under p. Factored out so tests can supply a deterministic draw.
func probability(p float64, draw func() float64) bool {
	return p > draw()
}

// LavyAcceptWith implements the "lavy" acceptance rule exactly as
// written in original_source/src/main.rs's lavy_accept, including the
// sign behavior spec.md §9 flags as an open question: a regression's
// tolerance probability grows *with* the size of the regression rather
// than shrinking, the opposite of standard simulated annealing. This is
// not "corrected" here — both forms are offered as named policies and
// the choice is left to the caller (spec.md §9).
//
// draw supplies the uniform random sample; production callers should
// pass math/rand.Float64 (see LavyAccept).
func LavyAcceptWith(temperature, threshold float64, draw func() float64) func(prev, next float64) bool {
	return func(prev, next float64) bool {
		if next > prev {
			return true
		}
		degradation := next - prev
		p := math.Exp(-degradation/temperature) - 1.0
		return p > threshold && probability(p, draw)
	}
}

// MetropolisAcceptWith implements the standard simulated-annealing
// acceptance rule for comparison against LavyAcceptWith: the
// probability of accepting a regression shrinks as the regression
// grows, and shrinks as temperature falls.
func MetropolisAcceptWith(temperature float64, draw func() float64) func(prev, next float64) bool {
	return func(prev, next float64) bool {
		if next > prev {
			return true
		}
		degradation := prev - next
		p := math.Exp(-degradation / temperature)
		return probability(p, draw)
	}
}

// GreedyAccept accepts only strict improvements — useful as a baseline
// or for testing the "Accept rule greediness" property from spec.md §8.
func GreedyAccept(prev, next float64) bool {
	return next > prev
}
