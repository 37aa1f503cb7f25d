package key

import "math/rand"

// Crib is a partition of the index set [0, Len) into fixed positions
// (pinned by known plaintext) and loose positions (free for the
// climber to mutate). Grounded in original_source/src/key.rs's Crib.
type Crib struct {
	fixed []int
	loose []int
}

// NewCrib returns a crib over [0, length) with every index loose.
func NewCrib(length int) *Crib {
	loose := make([]int, length)
	for i := range loose {
		loose[i] = i
	}
	return &Crib{loose: loose}
}

// Fixed returns the fixed index collection. Do not mutate the result.
func (c *Crib) Fixed() []int {
	return c.fixed
}

// Loose returns the loose index collection. Do not mutate the result.
func (c *Crib) Loose() []int {
	return c.loose
}

// Fix moves index item from loose to fixed. Idempotent: fixing an
// already-fixed index is a no-op, matching spec.md §4.2.
func (c *Crib) Fix(item int) {
	for i, v := range c.loose {
		if v == item {
			c.loose = append(c.loose[:i], c.loose[i+1:]...)
			c.fixed = append(c.fixed, item)
			return
		}
	}
}

// IsFixed reports whether item has been fixed.
func (c *Crib) IsFixed(item int) bool {
	for _, v := range c.fixed {
		if v == item {
			return true
		}
	}
	return false
}

// Sample returns a uniformly chosen loose index.
func (c *Crib) Sample() int {
	return c.loose[rand.Intn(len(c.loose))]
}
