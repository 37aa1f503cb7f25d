package ngram

import (
	"fmt"
	"math"

	"cipherclimb/internal/alphabet"
)

// Model is an n-gram frequency model re-expressed in the plaintext
// symbol space, so that scoring a decoded buffer never touches human
// characters again. Grounded in original_source/src/encoding.rs's
// Frequency and the teacher's frequencyMap built in cmd/hillclimb.go.
type Model struct {
	N     int
	Floor float64
	// scores is keyed by the gram encoded as a string of raw symbol
	// bytes (string(symbols)), since Go strings are comparable map keys
	// and symbols fit in a byte.
	scores map[string]float64
}

// score(g) = 1 / -log10(c/total); see spec.md §4.1.
func scoreFromCount(c, total uint64) float64 {
	return 1.0 / -math.Log10(float64(c)/float64(total))
}

// NewModel derives a Model from raw counts, per spec.md §4.1: the floor
// is the score a gram with an assumed count of 0.1 would get.
func NewModel(count *Count) (*Model, error) {
	total := count.Total()
	if total == 0 {
		return nil, fmt.Errorf("ngram: count table is empty, cannot derive a model")
	}
	floor := 1.0 / -math.Log10(0.1/float64(total))
	m := &Model{N: count.N, Floor: floor, scores: make(map[string]float64, len(count.counts))}
	for gram, c := range count.counts {
		m.scores[gram] = scoreFromCount(c, total)
	}
	return m, nil
}

// Encode re-expresses every gram key of the model into the plaintext
// symbol space using enc, returning a new Model. This is the "once at
// load" re-encoding spec.md §4.1 calls for.
func (m *Model) Encode(enc *alphabet.Encoding) (*Model, error) {
	out := &Model{N: m.N, Floor: m.Floor, scores: make(map[string]float64, len(m.scores))}
	for gram, score := range m.scores {
		symbols, err := enc.EncodeString(gram)
		if err != nil {
			return nil, fmt.Errorf("ngram: encoding model gram %q: %w", gram, err)
		}
		out.scores[string(symbols)] = score
	}
	return out, nil
}

// Score returns the fitness of a decoded symbol buffer: the sum over
// every length-N window of the model's score for that gram, or Floor
// when the gram is unseen. Zero for buffers shorter than N.
func (m *Model) Score(buf []alphabet.Symbol) float64 {
	var total float64
	it := NewGrams(buf, m.N)
	for window, ok := it.Next(); ok; window, ok = it.Next() {
		if score, present := m.scores[string(window)]; present {
			total += score
		} else {
			total += m.Floor
		}
	}
	return total
}

// Get returns the model's stored score for gram and whether it was
// present (as opposed to substituted with Floor), per the "Frequency
// floor" testable property in spec.md §8.
func (m *Model) Get(gram []alphabet.Symbol) (float64, bool) {
	score, present := m.scores[string(gram)]
	return score, present
}
