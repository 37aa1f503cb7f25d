// Package ioc implements the index-of-coincidence statistic and the
// period-estimation search built on top of it, grounded in
// original_source/src/util.rs's index_of_coincidence and
// estimate_key_period_by_index_of_coincidence. Useful as a crib-free
// sanity check before a climb: a high IoC on a de-interleaved slice
// suggests that slice is monoalphabetic.
package ioc

import "cipherclimb/internal/alphabet"

// DefaultThreshold is the original's ioc_threshold constant: a
// de-interleaved slice whose index of coincidence exceeds this is
// judged monoalphabetic enough to stop searching for a longer period.
const DefaultThreshold = 1.55

// IndexOfCoincidence computes the normalized index of coincidence of
// symbols over the given alphabet size: the probability that two
// symbols drawn at random (without replacement) from symbols match,
// scaled by alphabetSize so a uniform random stream scores 1.0.
func IndexOfCoincidence(symbols []alphabet.Symbol, alphabetSize int) float64 {
	counts := make([]uint64, alphabetSize)
	for _, s := range symbols {
		counts[s]++
	}

	var numer, total uint64
	for _, c := range counts {
		if c > 0 {
			numer += c * (c - 1)
		}
		total += c
	}
	if total < 2 {
		return 0
	}
	return (float64(alphabetSize) * float64(numer)) / (float64(total) * float64(total-1))
}

// EstimatePeriod searches increasing candidate periods starting at 1,
// de-interleaving symbols into period columns and averaging their
// index of coincidence, and returns the first period whose average
// exceeds threshold. Grounded in
// estimate_key_period_by_index_of_coincidence; intended for
// diagnosing polyalphabetic ciphers before falling back to the
// single-key climber.
func EstimatePeriod(symbols []alphabet.Symbol, alphabetSize int, threshold float64) int {
	period := 0
	for {
		period++
		var sum float64
		for offset := 0; offset < period; offset++ {
			column := deinterleave(symbols, period, offset)
			sum += IndexOfCoincidence(column, alphabetSize)
		}
		if sum/float64(period) > threshold {
			return period
		}
		if period >= len(symbols) {
			return period
		}
	}
}

func deinterleave(symbols []alphabet.Symbol, period, offset int) []alphabet.Symbol {
	n := len(symbols) / period
	column := make([]alphabet.Symbol, 0, n)
	for j := 0; j*period+offset < len(symbols); j++ {
		column = append(column, symbols[j*period+offset])
	}
	return column
}
