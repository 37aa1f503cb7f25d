// Package alphabet implements the two symbol spaces the solver works
// over — the cipher alphabet and the plaintext alphabet — and the
// bijective encodings between human characters and the compact integer
// symbols used everywhere else in the package.
package alphabet

import "fmt"

// Symbol is a compact nonnegative identifier for a character in some
// alphabet. 256 values are enough for any cipher or plaintext alphabet
// this solver expects to see.
type Symbol = byte

// Alphabet is the dense range [0, Len). It never has holes.
type Alphabet struct {
	size int
}

// New returns the alphabet [0, size).
func New(size int) Alphabet {
	return Alphabet{size: size}
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return a.size
}

// Symbols returns every symbol in the alphabet, in order.
func (a Alphabet) Symbols() []Symbol {
	out := make([]Symbol, a.size)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}

// ErrInvalidHomophoneRatio is returned when a negative homophone ratio
// is supplied to Encoding.CipherAlphabet.
var ErrInvalidHomophoneRatio = fmt.Errorf("alphabet: homophone ratio must be >= 0")

// WithHomophones returns the cipher alphabet for a given plaintext
// alphabet size and homophone ratio h: C = P + floor(P*h). h == 0 gives
// back the plaintext alphabet size unchanged (plain substitution).
func WithHomophones(plainSize int, homophoneRatio float64) (Alphabet, error) {
	if homophoneRatio < 0 {
		return Alphabet{}, ErrInvalidHomophoneRatio
	}
	extend := int(float64(plainSize) * homophoneRatio)
	return New(plainSize + extend), nil
}
