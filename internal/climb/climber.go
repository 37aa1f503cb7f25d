// Package climb implements the stochastic hill-climbing search engine:
// the core of this solver, per spec.md §4.3. Grounded in
// original_source/src/hill.rs's Climber/Config/climb and the teacher's
// cmd/hillclimb.go generation loop, generalized to support homophones
// and cribs, which the teacher's implementation does not.
package climb

import (
	"fmt"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/key"
)

// MinEnergy is the initial run/top energy before the first key is
// scored, chosen low enough that any real score will exceed it.
const MinEnergy = -99e99

// Climber bundles every piece of mutable and immutable state a single
// search run needs. Created once per search; RunKey/TopKey/DecodedBuf
// are exclusively owned by it for the run's lifetime (spec.md §5).
type Climber struct {
	CipherEncoding *alphabet.Encoding
	CipherAlphabet alphabet.Alphabet
	PlainEncoding  *alphabet.Encoding
	PlainAlphabet  alphabet.Alphabet

	CipherBuf  []alphabet.Symbol
	DecodedBuf []alphabet.Symbol

	RunKey key.Key
	TopKey key.Key
	FixKey key.Key

	RunEnergy float64
	TopEnergy float64

	Crib *key.Crib
}

// New builds a Climber for a given ciphertext buffer, cipher and
// plaintext encodings, and homophone ratio (spec.md §3).
func New(cipherBuf []alphabet.Symbol, cipherEncoding, plainEncoding *alphabet.Encoding, homophoneRatio float64) (*Climber, error) {
	plainAlphabet := plainEncoding.Alphabet()
	cipherAlphabet, err := cipherEncoding.CipherAlphabet(homophoneRatio)
	if err != nil {
		return nil, fmt.Errorf("climb: %w", err)
	}

	length := cipherAlphabet.Len()
	c := &Climber{
		CipherEncoding: cipherEncoding,
		PlainEncoding:  plainEncoding,
		CipherAlphabet: cipherAlphabet,
		PlainAlphabet:  plainAlphabet,
		CipherBuf:      cipherBuf,
		DecodedBuf:     make([]alphabet.Symbol, len(cipherBuf)),
		FixKey:         key.New(length),
		RunKey:         key.New(length),
		TopKey:         key.New(length),
		RunEnergy:      MinEnergy,
		TopEnergy:      MinEnergy,
		Crib:           key.NewCrib(length),
	}
	return c, nil
}

// CribChar pins cipher symbol encodedChar to always decode to
// decodedChar: it writes the fix key and marks the position fixed.
func (c *Climber) CribChar(encodedChar, decodedChar alphabet.Symbol) {
	c.FixKey[encodedChar] = decodedChar
	c.Crib.Fix(int(encodedChar))
}

// CribCharAt fixes the cipher symbol found at ciphertext position idx
// to decode to decodedChar.
func (c *Climber) CribCharAt(idx int, decodedChar alphabet.Symbol) {
	c.CribChar(c.CipherBuf[idx], decodedChar)
}

// CribString applies known plaintext at a ciphertext offset, fixing one
// key position per character. Returns a consistency error (spec.md §7)
// if the crib would force one cipher symbol to decode to two different
// plaintext symbols.
func (c *Climber) CribString(offset int, plaintext string) error {
	if offset < 0 || offset+len([]rune(plaintext)) > len(c.CipherBuf) {
		return fmt.Errorf("climb: crib offset %d + len %d exceeds ciphertext length %d", offset, len([]rune(plaintext)), len(c.CipherBuf))
	}
	decoded, err := c.PlainEncoding.EncodeString(plaintext)
	if err != nil {
		return fmt.Errorf("climb: encoding crib string: %w", err)
	}
	for i, want := range decoded {
		idx := offset + i
		cipherSym := c.CipherBuf[idx]
		if c.Crib.IsFixed(int(cipherSym)) && c.FixKey[cipherSym] != want {
			return fmt.Errorf(
				"climb: crib inconsistency at offset %d: cipher symbol %d already fixed to plaintext symbol %d, crib demands %d",
				idx, cipherSym, c.FixKey[cipherSym], want,
			)
		}
		c.CribChar(cipherSym, want)
	}
	return nil
}
