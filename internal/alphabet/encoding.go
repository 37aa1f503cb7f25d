package alphabet

import "fmt"

// ErrUnencodableRune is returned when Encode is asked to encode a rune
// that is not part of the alphabet the Encoding was built from.
type ErrUnencodableRune struct {
	Rune rune
}

func (e *ErrUnencodableRune) Error() string {
	return fmt.Sprintf("alphabet: rune %q is not in this encoding's alphabet", e.Rune)
}

// ErrUndecodableSymbol is returned when Decode is asked to decode a
// symbol outside the range the Encoding was built from.
type ErrUndecodableSymbol struct {
	Symbol Symbol
}

func (e *ErrUndecodableSymbol) Error() string {
	return fmt.Sprintf("alphabet: symbol %d has no decoding in this encoding", e.Symbol)
}

// Encoding is a paired, bijective mapping between human characters and
// the compact symbols the rest of the solver operates on. Built once
// from an alphabet string, where the i-th rune of the string is the
// human form of symbol i.
type Encoding struct {
	encode map[rune]Symbol
	decode map[Symbol]rune
}

// NewEncoding builds an Encoding from an ordered alphabet string. The
// string must not contain duplicate runes.
func NewEncoding(alphabetString string) (*Encoding, error) {
	runes := []rune(alphabetString)
	encode := make(map[rune]Symbol, len(runes))
	decode := make(map[Symbol]rune, len(runes))
	for i, r := range runes {
		if _, dup := encode[r]; dup {
			return nil, fmt.Errorf("alphabet: duplicate rune %q in alphabet string", r)
		}
		encode[r] = Symbol(i)
		decode[Symbol(i)] = r
	}
	return &Encoding{encode: encode, decode: decode}, nil
}

// Len returns the number of symbols this encoding knows about.
func (e *Encoding) Len() int {
	return len(e.encode)
}

// Alphabet returns the plain alphabet of this encoding (homophone ratio 0).
func (e *Encoding) Alphabet() Alphabet {
	return New(e.Len())
}

// CipherAlphabet returns the homophone-expanded alphabet derived from
// this encoding for the given ratio. See WithHomophones.
func (e *Encoding) CipherAlphabet(homophoneRatio float64) (Alphabet, error) {
	return WithHomophones(e.Len(), homophoneRatio)
}

// RuneSet returns the set of runes this encoding can encode.
func (e *Encoding) RuneSet() map[rune]struct{} {
	set := make(map[rune]struct{}, len(e.encode))
	for r := range e.encode {
		set[r] = struct{}{}
	}
	return set
}

// Encode converts a single rune to its symbol.
func (e *Encoding) Encode(r rune) (Symbol, error) {
	s, ok := e.encode[r]
	if !ok {
		return 0, &ErrUnencodableRune{Rune: r}
	}
	return s, nil
}

// Decode converts a single symbol back to its rune.
func (e *Encoding) Decode(s Symbol) (rune, error) {
	r, ok := e.decode[s]
	if !ok {
		return 0, &ErrUndecodableSymbol{Symbol: s}
	}
	return r, nil
}

// EncodeString encodes every rune of s into a symbol buffer. Every rune
// must be present in the alphabet; use a Preprocessor first to guarantee
// this.
func (e *Encoding) EncodeString(s string) ([]Symbol, error) {
	runes := []rune(s)
	out := make([]Symbol, len(runes))
	for i, r := range runes {
		sym, err := e.Encode(r)
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}
	return out, nil
}

// DecodeString decodes a symbol buffer back into a string.
func (e *Encoding) DecodeString(symbols []Symbol) (string, error) {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		r, err := e.Decode(s)
		if err != nil {
			return "", err
		}
		runes[i] = r
	}
	return string(runes), nil
}
