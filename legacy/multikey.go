// Package legacy preserves the abandoned period-K multi-key
// polyalphabetic variant of the solver. The core engine moved to a
// single homophonic substitution key (internal/climb) because a
// periodic key set never converged reliably under hill-climbing once
// the period grew past a handful of columns; this package is kept as
// the old prototype, adapted to the current codebase's types so it
// still compiles and is exercised by its own test, but it is not wired
// into any CLI command. Grounded in
// original_source/src/old/{key,hill,glyph}.rs.
package legacy

import (
	"fmt"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/key"
)

// KeySet is a period-K collection of substitution keys: ciphertext
// position i is decoded with KeySet[i % len(KeySet)]. This was the
// period-K generalization of the single key used for interleaved
// (Vigenere-like) homophonic ciphers, grounded in old/key.rs's Keys.
type KeySet []key.Key

// NewKeySet returns a KeySet of the given period, each key having
// length keyLen.
func NewKeySet(period, keyLen int) KeySet {
	ks := make(KeySet, period)
	for i := range ks {
		ks[i] = key.New(keyLen)
	}
	return ks
}

// Period returns the number of columns in the key set.
func (ks KeySet) Period() int {
	return len(ks)
}

// Decode applies column i%Period() of the key set to each ciphertext
// symbol, mirroring old/key.rs's Keys::decode.
func (ks KeySet) Decode(cipher, out []alphabet.Symbol) {
	period := ks.Period()
	for i, c := range cipher {
		out[i] = ks[i%period][c]
	}
}

// Randomize fills every column independently via key.Random.
func (ks KeySet) Randomize(cipherAlphabet, plainAlphabet alphabet.Alphabet) {
	for i := range ks {
		ks[i] = key.Random(cipherAlphabet, plainAlphabet)
	}
}

// CopyFrom overwrites ks with src column by column.
func (ks KeySet) CopyFrom(src KeySet) {
	if len(ks) != len(src) {
		panic(fmt.Sprintf("legacy: key set length mismatch: %d != %d", len(ks), len(src)))
	}
	for i := range ks {
		ks[i].CopyFrom(src[i])
	}
}

// MultiKeyConfig mirrors old/hill.rs's ClimberConfig: energy and
// accept score and gate moves, randomKey seeds the run, and mutateKey
// is invoked after a stale streak rather than on a fixed cycle (the
// period-K variant never grew the derive/crib machinery the single-key
// engine later got).
type MultiKeyConfig struct {
	StaleLimit int

	Energy    func(decoded []alphabet.Symbol) float64
	Accept    func(next, prev float64) bool
	RandomKey func(ks KeySet, cipherAlphabet, plainAlphabet alphabet.Alphabet)
	MutateKey func(ks KeySet)
}

// MultiKeyClimber runs the period-K hill climb over a fixed cycle
// count (old/hill.rs hard-codes 1000 outer sweeps; kept as a parameter
// here since nothing about the period-K variant requires that exact
// figure).
type MultiKeyClimber struct {
	CipherAlphabet alphabet.Alphabet
	PlainAlphabet  alphabet.Alphabet
	CipherBuf      []alphabet.Symbol
	DecodedBuf     []alphabet.Symbol

	Run KeySet
	Top KeySet

	RunEnergy float64
	TopEnergy float64
}

// MinEnergy mirrors climb.MinEnergy; duplicated here rather than
// imported so this package stays a self-contained relic.
const MinEnergy = -99e99

// NewMultiKeyClimber builds a climber for a fixed key-set period.
func NewMultiKeyClimber(cipherBuf []alphabet.Symbol, cipherAlphabet, plainAlphabet alphabet.Alphabet, period int) *MultiKeyClimber {
	return &MultiKeyClimber{
		CipherAlphabet: cipherAlphabet,
		PlainAlphabet:  plainAlphabet,
		CipherBuf:      cipherBuf,
		DecodedBuf:     make([]alphabet.Symbol, len(cipherBuf)),
		Run:            NewKeySet(period, cipherAlphabet.Len()),
		Top:            NewKeySet(period, cipherAlphabet.Len()),
		RunEnergy:      MinEnergy,
		TopEnergy:      MinEnergy,
	}
}

// Climb runs cycles outer sweeps of the combinator over the run key
// set's first column, matching old/hill.rs's Combinator/climb: that
// prototype only ever swapped within column 0, a known limitation that
// never got fixed before the variant was abandoned.
func (c *MultiKeyClimber) Climb(config *MultiKeyConfig, cycles int) {
	config.RandomKey(c.Run, c.CipherAlphabet, c.PlainAlphabet)
	c.Run.Decode(c.CipherBuf, c.DecodedBuf)
	c.RunEnergy = config.Energy(c.DecodedBuf)

	stale := 0
	keyLen := c.CipherAlphabet.Len()

	for cycle := 0; cycle < cycles; cycle++ {
		for i := 0; i < keyLen; i++ {
			for j := i + 1; j < keyLen; j++ {
				if config.StaleLimit > 0 && stale == config.StaleLimit {
					config.MutateKey(c.Run)
					stale = 0
				}

				c.Run[0].Swap(i, j)
				c.Run.Decode(c.CipherBuf, c.DecodedBuf)
				next := config.Energy(c.DecodedBuf)

				if config.Accept(next, c.RunEnergy) {
					c.RunEnergy = next
					if next > c.TopEnergy {
						c.Top.CopyFrom(c.Run)
						c.TopEnergy = next
						stale = 0
						continue
					}
				} else {
					c.Run[0].Swap(i, j)
				}
				stale++
			}
		}
	}
}
