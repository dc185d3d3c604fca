package randsrc

import (
	"math/rand/v2"
)

// Source is the single random source used for every draw the drill makes:
// candidate pruning, edge costs, question index, and the mode coin flips.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int
}

// New returns a PCG-backed source seeded with seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a source seeded from the runtime's entropy.
func NewRandom() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// Each value is reduced modulo n so a script stays in range for any call.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence creates a scripted source.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value reduced into [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("randsrc: IntN called with n <= 0")
	}
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws returns how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.pos
}
