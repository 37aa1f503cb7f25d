package climb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/key"
)

// spec.md §8 scenario: prev=100, next=99 gives a degradation of 1,
// p ~= 2.857e-4, which is below the default threshold of 0.0085, so the
// move is rejected deterministically regardless of the random draw.
func TestLavyAcceptRejectsSmallRegressionDeterministically(t *testing.T) {
	accept := LavyAcceptWith(DefaultTemperature, DefaultThreshold, func() float64 { return 0 })
	assert.False(t, accept(100, 99))
}

// prev=100, next=50 gives p ~= 0.0144, above threshold, so the move is
// accepted when the draw falls under p and rejected otherwise.
func TestLavyAcceptIsProbabilisticAboveThreshold(t *testing.T) {
	degradation := 50.0 - 100.0 // next - prev, as LavyAcceptWith computes it
	p := math.Exp(-degradation/DefaultTemperature) - 1.0
	require.Greater(t, p, DefaultThreshold)

	acceptLow := LavyAcceptWith(DefaultTemperature, DefaultThreshold, func() float64 { return p / 2 })
	assert.True(t, acceptLow(100, 50))

	acceptHigh := LavyAcceptWith(DefaultTemperature, DefaultThreshold, func() float64 { return p * 2 })
	assert.False(t, acceptHigh(100, 50))
}

func TestLavyAcceptAlwaysAcceptsImprovement(t *testing.T) {
	accept := LavyAcceptWith(DefaultTemperature, DefaultThreshold, func() float64 { return 1 })
	assert.True(t, accept(10, 20))
}

func TestMetropolisAcceptAlwaysAcceptsImprovement(t *testing.T) {
	accept := MetropolisAcceptWith(DefaultTemperature, func() float64 { return 1 })
	assert.True(t, accept(10, 20))
}

func TestGreedyAcceptRejectsEquality(t *testing.T) {
	assert.False(t, GreedyAccept(5, 5))
	assert.True(t, GreedyAccept(5, 6))
	assert.False(t, GreedyAccept(5, 4))
}

func identityEncoding(t *testing.T) *alphabet.Encoding {
	t.Helper()
	enc, err := alphabet.NewEncoding("ABCD")
	require.NoError(t, err)
	return enc
}

func newTestClimber(t *testing.T) *Climber {
	t.Helper()
	enc := identityEncoding(t)
	cipherBuf, err := enc.EncodeString("ABCDABCD")
	require.NoError(t, err)

	c, err := New(cipherBuf, enc, enc, 0)
	require.NoError(t, err)
	return c
}

// A fixed crib position must never change once the run key is installed,
// no matter how many swaps land on it (spec.md §4.2/§7).
func TestClimbRespectsCribFixedPositions(t *testing.T) {
	c := newTestClimber(t)
	c.CribCharAt(0, c.CipherBuf[0]) // pin cipher[0] to decode to itself

	fixedCipherSym := c.CipherBuf[0]
	fixedWant := c.FixKey[fixedCipherSym]

	cfg := &Config{
		Cycle:       5,
		DeriveCycle: 0,
		MutateCycle: 0,
		Energy:      func(decoded []alphabet.Symbol) float64 { return 0 },
		Accept:      GreedyAccept,
		RandomKey: func(c *Climber) {
			c.RunKey.CopyFrom(key.New(len(c.RunKey)))
		},
		DeriveKey: func(c *Climber) {},
		MutateKey: func(c *Climber) {},
		Report:    func(c *Climber, cycle, accepted, rejected int) {},
		Crib:      func(c *Climber) {},
	}
	c.Climb(cfg)

	assert.Equal(t, fixedWant, c.RunKey[fixedCipherSym])
}

// TopEnergy must never decrease across a run; TopKey always reflects
// the key that achieved TopEnergy (spec.md §5 monotonicity).
func TestClimbTopEnergyIsMonotonic(t *testing.T) {
	c := newTestClimber(t)

	energies := []float64{1, 5, 3, 8, 2, 10, 0}
	call := 0
	cfg := &Config{
		Cycle: 1,
		Energy: func(decoded []alphabet.Symbol) float64 {
			e := energies[call%len(energies)]
			call++
			return e
		},
		Accept:    func(prev, next float64) bool { return true },
		RandomKey: func(c *Climber) {},
		DeriveKey: func(c *Climber) {},
		MutateKey: func(c *Climber) {},
		Report:    func(c *Climber, cycle, accepted, rejected int) {},
		Crib:      func(c *Climber) {},
	}

	prevTop := c.TopEnergy
	c.Climb(cfg)
	assert.GreaterOrEqual(t, c.TopEnergy, prevTop)
	assert.Equal(t, 10.0, c.TopEnergy)
	assert.Equal(t, c.TopKey, c.RunKey) // last improving key seen was the max, 10
}

// Decoding with the installed run key and re-decoding after two swaps of
// the same pair is the identity operation (spec.md §8 scenario 1,
// generalized): Swap is its own inverse.
func TestClimbDecodeRoundTripsUnderDoubleSwap(t *testing.T) {
	c := newTestClimber(t)
	before := make([]alphabet.Symbol, len(c.CipherBuf))
	c.RunKey.Decode(c.CipherBuf, before)

	c.RunKey.Swap(0, 1)
	c.RunKey.Swap(0, 1)

	after := make([]alphabet.Symbol, len(c.CipherBuf))
	c.RunKey.Decode(c.CipherBuf, after)
	assert.Equal(t, before, after)
}

func TestCribStringRejectsOutOfRangeOffset(t *testing.T) {
	c := newTestClimber(t)
	err := c.CribString(6, "ABC")
	assert.Error(t, err)
}

// spec.md §1's "handling of homophones (a cipher alphabet larger than
// the plaintext alphabet)" exercised end to end with two genuinely
// distinct encodings, mirroring internal/key's TestRandomSurjective*
// cipher=9/plain=4 style, rather than the identity enc/enc New() calls
// every other test in this file uses.
func TestClimbSupportsDistinctCipherAndPlainAlphabets(t *testing.T) {
	cipherEnc, err := alphabet.NewEncoding("ABCDEFGHI") // 9-symbol cipher alphabet
	require.NoError(t, err)
	plainEnc, err := alphabet.NewEncoding("WXYZ") // 4-symbol plaintext alphabet
	require.NoError(t, err)

	cipherBuf, err := cipherEnc.EncodeString("ABCDEFGHI")
	require.NoError(t, err)

	c, err := New(cipherBuf, cipherEnc, plainEnc, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, c.CipherAlphabet.Len())
	assert.Equal(t, 4, c.PlainAlphabet.Len())

	freq := []float64{0.25, 0.25, 0.25, 0.25}
	k, err := key.RandomSurjective(c.CipherAlphabet, c.PlainAlphabet, freq)
	require.NoError(t, err)
	c.RunKey.CopyFrom(k)

	decoded := make([]alphabet.Symbol, len(c.CipherBuf))
	c.RunKey.Decode(c.CipherBuf, decoded)
	for _, sym := range decoded {
		assert.Less(t, int(sym), 4)
	}

	text, err := plainEnc.DecodeString(decoded)
	require.NoError(t, err)
	assert.Len(t, text, len(cipherBuf))
}

func TestCribStringDetectsInconsistency(t *testing.T) {
	c := newTestClimber(t)
	// cipher[0] and cipher[4] are both 'A' in "ABCDABCD": crib the first
	// occurrence to 'B' and the second to 'C' and expect a conflict.
	require.NoError(t, c.CribString(0, "B"))
	err := c.CribString(4, "C")
	assert.Error(t, err)
}
