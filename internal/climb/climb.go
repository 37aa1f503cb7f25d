package climb

import "cipherclimb/internal/alphabet"

// Config parameterizes a climb run with seven pluggable policies plus
// the outer sweep count and two stall-counter thresholds, per spec.md §4.3 and §9's note
// that this is best modeled as one configuration record rather than
// deep inheritance.
//
// Callback contracts:
//   - Energy reads a decoded buffer and must not mutate it.
//   - Accept reads two energies and has no side effects.
//   - RandomKey, DeriveKey, MutateKey, and Crib may mutate c.RunKey
//     (and, for Crib, c.Crib/c.FixKey) but must leave every other field
//     of c untouched; the loop re-decodes after any key mutation.
//   - Report must not mutate c at all — it is purely informational
//     (spec.md §5).
type Config struct {
	Cycle       int
	DeriveCycle int
	MutateCycle int

	Energy    func(decoded []alphabet.Symbol) float64
	Accept    func(prev, next float64) bool
	RandomKey func(c *Climber)
	DeriveKey func(c *Climber)
	MutateKey func(c *Climber)
	Report    func(c *Climber, cycle, accepted, rejected int)
	Crib      func(c *Climber)
}

// Climb runs the stochastic hill-climbing search described in
// spec.md §4.3. It installs a starting key, overwrites crib-fixed
// positions, and then repeats Cycle outer sweeps over every unordered
// pair of loose positions, swapping, scoring, and accepting or
// rejecting per config.Accept.
func (c *Climber) Climb(config *Config) {
	config.RandomKey(c)

	for _, idx := range c.Crib.Fixed() {
		c.RunKey[idx] = c.FixKey[idx]
	}
	c.RunKey.Decode(c.CipherBuf, c.DecodedBuf)

	accepted, rejected := 1, 1
	mutateCounter, deriveCounter := 0, 0

	for cycle := 0; cycle < config.Cycle; cycle++ {
		config.Report(c, cycle, accepted, rejected)

		loose := c.Crib.Loose()
		for ii := 0; ii < len(loose); ii++ {
			for jj := ii + 1; jj < len(loose); jj++ {
				// Preserves the invariant noted in spec.md §9: loose is
				// stable during one outer sweep under the default no-op
				// Crib hook, but a future hook that shrinks it mid-sweep
				// needs this bounds check to avoid an out-of-range index.
				if ii >= len(loose) || jj >= len(loose) {
					break
				}
				i, j := loose[ii], loose[jj]

				if config.DeriveCycle > 0 && deriveCounter == config.DeriveCycle {
					config.DeriveKey(c)
					deriveCounter = 0
				}
				if config.MutateCycle > 0 && mutateCounter == config.MutateCycle {
					config.MutateKey(c)
					mutateCounter = 0
				}

				c.RunKey.Swap(i, j)
				c.RunKey.Decode(c.CipherBuf, c.DecodedBuf)
				next := config.Energy(c.DecodedBuf)

				if !config.Accept(c.RunEnergy, next) {
					c.RunKey.Swap(i, j)
					mutateCounter++
					deriveCounter++
					rejected++
					continue
				}
				accepted++

				c.RunEnergy = next
				if c.RunEnergy > c.TopEnergy {
					c.TopKey.CopyFrom(c.RunKey)
					c.TopEnergy = c.RunEnergy
					config.Crib(c)
					mutateCounter, deriveCounter = 0, 0
				}
			}
		}
	}
}
