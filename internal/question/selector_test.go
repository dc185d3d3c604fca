package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adjacent/internal/randsrc"
)

func TestChoose_SingleIndexRange(t *testing.T) {
	for i := range DefaultTemplates {
		q, err := Choose(randsrc.New(1), DefaultTemplates, i, i)
		require.NoError(t, err)
		assert.Equal(t, i, q.Index)
		assert.Equal(t, DefaultTemplates[i].Kind, q.Kind)
	}
}

func TestChoose_Prompts(t *testing.T) {
	q, err := Choose(randsrc.NewSequence(0), DefaultTemplates, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Fill in the adjacency matrix", q.Prompt)

	q, err = Choose(randsrc.NewSequence(1), DefaultTemplates, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, KindList, q.Kind)
	assert.Equal(t, "Fill in the adjacency list", q.Prompt)
}

func TestChoose_CoversRange(t *testing.T) {
	templates := []Template{
		{Kind: KindMatrix, Lines: []string{"m"}},
		{Kind: KindList, Lines: []string{"l"}},
		{Kind: Kind("degree"), Lines: []string{"What is the ", "degree of A?"}},
	}
	src := randsrc.New(99)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		q, err := Choose(src, templates, 1, 2)
		require.NoError(t, err)
		assert.True(t, q.Index >= 1 && q.Index <= 2)
		seen[q.Index] = true
		if q.Index == 2 {
			assert.Equal(t, "What is the degree of A?", q.Prompt)
		}
	}
	assert.Len(t, seen, 2)
}

func TestChoose_Errors(t *testing.T) {
	_, err := Choose(randsrc.New(1), nil, 0, 0)
	assert.ErrorIs(t, err, ErrNoTemplates)

	for _, r := range [][2]int{{-1, 0}, {0, 2}, {1, 0}} {
		_, err := Choose(randsrc.New(1), DefaultTemplates, r[0], r[1])
		assert.ErrorIs(t, err, ErrRange)
	}
}
