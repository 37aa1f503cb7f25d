// Package key implements the substitution key and crib data model:
// the total function from cipher symbols to plaintext symbols the
// climber mutates, and the fixed/loose partition a crib imposes on it.
// Grounded in original_source/src/key.rs and the teacher's key handling
// spread across cmd/hillclimb.go and cmd/substitution.go.
package key

import (
	"fmt"
	"math/rand"

	"cipherclimb/internal/alphabet"
)

// Key is a dense array of plaintext symbols, one per cipher symbol:
// K: [0, C) -> [0, P). Bijective when len(Key) == P (plain
// substitution); surjective-by-construction (not by invariant) when
// len(Key) > P (homophonic).
type Key []alphabet.Symbol

// New returns a zeroed key of the given length.
func New(length int) Key {
	return make(Key, length)
}

// Swap exchanges the values at two positions. The sole neighborhood
// move the climber uses.
func (k Key) Swap(i, j int) {
	k[i], k[j] = k[j], k[i]
}

// Decode writes key[cipher[idx]] into out[idx] for every index.
func (k Key) Decode(cipher []alphabet.Symbol, out []alphabet.Symbol) {
	for i, c := range cipher {
		out[i] = k[c]
	}
}

// CopyFrom overwrites k's contents with src's. Panics if lengths differ,
// matching the "total function over a fixed alphabet" invariant — a
// length mismatch here means the caller mixed up two different climber
// configurations.
func (k Key) CopyFrom(src Key) {
	if len(k) != len(src) {
		panic(fmt.Sprintf("key: CopyFrom length mismatch: %d != %d", len(k), len(src)))
	}
	copy(k, src)
}

// Clone returns an independent copy of k.
func (k Key) Clone() Key {
	out := make(Key, len(k))
	copy(out, k)
	return out
}

// RandomPutc perturbs the key by overwriting its last three positions
// with uniformly sampled plaintext symbols, whether or not a crib has
// fixed them. It is a "mutate" move for breaking out of a stalled swap
// search, but no command in this module installs it as a MutateKey
// hook: the climb command's hook swaps two sampled loose positions. It
// can destroy surjectivity, which subsequent swaps then recover from
// (spec.md §4.3's "Neighborhood rationale").
func (k Key) RandomPutc(plain alphabet.Alphabet) {
	n := len(k)
	if n < 3 {
		for i := range k {
			k[i] = randomSymbol(plain)
		}
		return
	}
	k[n-3] = randomSymbol(plain)
	k[n-2] = randomSymbol(plain)
	k[n-1] = randomSymbol(plain)
}

func randomSymbol(a alphabet.Alphabet) alphabet.Symbol {
	return alphabet.Symbol(rand.Intn(a.Len()))
}

// Random pairs uniformly sampled elements from cipher and plain without
// replacement until one side is exhausted, then assigns any remaining
// cipher positions a uniform plaintext symbol. This is the original,
// non-surjective routine from original_source/src/key.rs's
// Key::randomize — kept for parity; see RandomSurjective for the fix
// spec.md §9 recommends.
func Random(cipher, plain alphabet.Alphabet) Key {
	k := New(cipher.Len())
	k.Randomize(cipher, plain)
	return k
}

// Randomize fills k in place using the Random algorithm.
func (k Key) Randomize(cipher, plain alphabet.Alphabet) {
	cipherSymbols := cipher.Symbols()
	plainSymbols := plain.Symbols()
	rand.Shuffle(len(cipherSymbols), func(i, j int) {
		cipherSymbols[i], cipherSymbols[j] = cipherSymbols[j], cipherSymbols[i]
	})
	rand.Shuffle(len(plainSymbols), func(i, j int) {
		plainSymbols[i], plainSymbols[j] = plainSymbols[j], plainSymbols[i]
	})

	paired := len(cipherSymbols)
	if len(plainSymbols) < paired {
		paired = len(plainSymbols)
	}
	for i := 0; i < paired; i++ {
		k[cipherSymbols[i]] = plainSymbols[i]
	}
	for i := paired; i < len(cipherSymbols); i++ {
		k[cipherSymbols[i]] = randomSymbol(plain)
	}
}

// RandomSurjective fixes the surjectivity gap spec.md §9 calls out:
// every plaintext symbol is first assigned to one distinct, uniformly
// sampled cipher position, guaranteeing every plaintext symbol has at
// least one preimage; the remaining cipher positions are then filled by
// a warm Bernoulli sweep against freq (see RandomDistribution).
func RandomSurjective(cipher, plain alphabet.Alphabet, freq []float64) (Key, error) {
	if cipher.Len() < plain.Len() {
		return nil, fmt.Errorf("key: cipher alphabet (%d) smaller than plaintext alphabet (%d), cannot be surjective", cipher.Len(), plain.Len())
	}
	k := New(cipher.Len())

	positions := cipher.Symbols()
	rand.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	assigned := make([]bool, cipher.Len())
	for p := 0; p < plain.Len(); p++ {
		pos := positions[p]
		k[pos] = alphabet.Symbol(p)
		assigned[pos] = true
	}

	remaining := make([]int, 0, cipher.Len()-plain.Len())
	for i, done := range assigned {
		if !done {
			remaining = append(remaining, i)
		}
	}
	if len(remaining) == 0 {
		return k, nil
	}

	warm := RandomDistribution(len(remaining), freq)
	for i, pos := range remaining {
		k[pos] = warm[i]
	}
	return k, nil
}

// RandomDistribution seeds a key of length len by a probabilistic
// Bernoulli sweep: it cycles through plaintext symbols, writing symbol
// p into the next unfilled position with probability freq[p], and
// repeats until every position has been written. This approximates the
// language's unigram distribution across the key's range, giving the
// climber a warm start. Grounded in original_source/src/key.rs's
// Key::random_distribution.
func RandomDistribution(length int, freq []float64) Key {
	k := New(length)
	filled := make([]bool, length)
	remaining := length

	keyIndex, freqIndex := 0, 0
	for remaining > 0 {
		keyIndex %= length
		freqIndex %= len(freq)

		if filled[keyIndex] {
			keyIndex++
			continue
		}

		if probability(freq[freqIndex]) {
			k[keyIndex] = alphabet.Symbol(freqIndex)
			filled[keyIndex] = true
			remaining--
		}
		freqIndex++
		keyIndex++
	}
	return k
}

func probability(p float64) bool {
	return p > rand.Float64()
}
