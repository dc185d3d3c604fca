package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_CyclesAndReduces(t *testing.T) {
	s := NewSequence(0, 7, -1)

	assert.Equal(t, 0, s.IntN(5))
	assert.Equal(t, 2, s.IntN(5)) // 7 % 5
	assert.Equal(t, 4, s.IntN(5)) // -1 wraps
	assert.Equal(t, 0, s.IntN(5)) // cycles back
	assert.Equal(t, 4, s.Draws())
}

func TestSequence_Empty(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 0, s.IntN(3))
}

func TestSequence_PanicsOnNonPositive(t *testing.T) {
	s := NewSequence(1)
	assert.Panics(t, func() { s.IntN(0) })
}

func TestNew_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		va, vb := a.IntN(100), b.IntN(100)
		assert.Equal(t, va, vb)
		assert.True(t, va >= 0 && va < 100)
	}
}
