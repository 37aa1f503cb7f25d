package ngram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherclimb/internal/alphabet"
)

func mustEncoding(t *testing.T, s string) *alphabet.Encoding {
	t.Helper()
	enc, err := alphabet.NewEncoding(s)
	require.NoError(t, err)
	return enc
}

func TestGramsCoverage(t *testing.T) {
	buf := []alphabet.Symbol{0, 1, 0, 1}
	it := NewGrams(buf, 2)
	var windows [][]alphabet.Symbol
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		windows = append(windows, append([]alphabet.Symbol{}, w...))
	}
	assert.Len(t, windows, 3)
	assert.Equal(t, Count(len(buf), 2), len(windows))

	shortBuf := []alphabet.Symbol{0}
	it = NewGrams(shortBuf, 2)
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, Count(len(shortBuf), 2))
}

// scenario 2 from spec.md §8: model = {AB:2.0, BA:1.0}, floor 0.1,
// buffer ABAB -> score 2.0 + 1.0 + 2.0 = 5.0
func TestModelScoreWithKnownGrams(t *testing.T) {
	enc := mustEncoding(t, "AB")
	m := &Model{N: 2, Floor: 0.1, scores: map[string]float64{}}
	for gram, score := range map[string]float64{"AB": 2.0, "BA": 1.0} {
		symbols, err := enc.EncodeString(gram)
		require.NoError(t, err)
		m.scores[string(symbols)] = score
	}

	buf, err := enc.EncodeString("ABAB")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, m.Score(buf), 1e-9)
}

// scenario 3: an absent n-gram uses floor: AAAA -> 0.1*3 = 0.3
func TestModelScoreUsesFloorForAbsentGrams(t *testing.T) {
	enc := mustEncoding(t, "AB")
	m := &Model{N: 2, Floor: 0.1, scores: map[string]float64{}}
	symbols, err := enc.EncodeString("AB")
	require.NoError(t, err)
	m.scores[string(symbols)] = 2.0

	buf, err := enc.EncodeString("AAAA")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, m.Score(buf), 1e-9)
}

func TestModelScoreShorterThanWindowIsZero(t *testing.T) {
	enc := mustEncoding(t, "AB")
	m := &Model{N: 4, Floor: 0.1, scores: map[string]float64{}}
	buf, err := enc.EncodeString("AB")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Score(buf))
}

func TestModelGetReturnsFloorOnlyViaScore(t *testing.T) {
	enc := mustEncoding(t, "AB")
	m := &Model{N: 1, Floor: 0.1, scores: map[string]float64{}}
	symbols, err := enc.EncodeString("A")
	require.NoError(t, err)
	m.scores[string(symbols)] = 9.0

	score, present := m.Get(symbols)
	assert.True(t, present)
	assert.Equal(t, 9.0, score)

	bSym, err := enc.EncodeString("B")
	require.NoError(t, err)
	_, present = m.Get(bSym)
	assert.False(t, present)
}

func TestCountCorpusAndNewModel(t *testing.T) {
	corpus := strings.NewReader("ABAB\nBABA\n")
	count, err := CountCorpus(corpus, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), count.counts["AB"]+count.counts["BA"]) // sanity on totals below

	model, err := NewModel(count)
	require.NoError(t, err)
	assert.Greater(t, model.Floor, 0.0)

	enc := mustEncoding(t, "AB")
	encoded, err := model.Encode(enc)
	require.NoError(t, err)
	assert.Equal(t, model.N, encoded.N)
	assert.Equal(t, model.Floor, encoded.Floor)
}

func TestLoadCountFileRejectsMismatchedGramLength(t *testing.T) {
	data := "AB 3\nABC 1\n"
	_, err := LoadCountFile(strings.NewReader(data))
	assert.Error(t, err)
}

func TestLoadAndWriteCountFileRoundTrip(t *testing.T) {
	count, err := NewCount(2)
	require.NoError(t, err)
	count.Add("ABAB")

	var buf strings.Builder
	require.NoError(t, WriteCountFile(&buf, count))

	reloaded, err := LoadCountFile(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, count.Total(), reloaded.Total())
}

func TestNewCountRejectsZeroN(t *testing.T) {
	_, err := NewCount(0)
	assert.ErrorIs(t, err, ErrInvalidN)
}
