package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexSet_Bijection(t *testing.T) {
	vs := DefaultVertices()
	require.Equal(t, 6, vs.Len())

	for i, want := range DefaultLabels {
		got, ok := vs.Label(i)
		require.True(t, ok)
		assert.Equal(t, want, got)

		idx, ok := vs.Index(want)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestVertexSet_NonAlphabetic(t *testing.T) {
	vs, err := NewVertexSet("north", "east", "south", "west")
	require.NoError(t, err)

	idx, ok := vs.Index("south")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	label, ok := vs.Label(3)
	require.True(t, ok)
	assert.Equal(t, "west", label)
}

func TestVertexSet_OutOfRange(t *testing.T) {
	vs := DefaultVertices()

	_, ok := vs.Label(-1)
	assert.False(t, ok)
	_, ok = vs.Label(6)
	assert.False(t, ok)
	_, ok = vs.Index("G")
	assert.False(t, ok)
	assert.False(t, vs.Contains("a"))
}

func TestVertexSet_Errors(t *testing.T) {
	_, err := NewVertexSet("A", "B", "A")
	assert.ErrorIs(t, err, ErrDuplicateVertex)

	_, err = NewVertexSet("A", "")
	assert.ErrorIs(t, err, ErrEmptyVertex)
}

func TestVertexSet_LabelsIsCopy(t *testing.T) {
	vs := DefaultVertices()
	labels := vs.Labels()
	labels[0] = "Z"

	got, _ := vs.Label(0)
	assert.Equal(t, "A", got)
}
