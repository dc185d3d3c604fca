package graph

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adjacent/internal/randsrc"
)

var allModes = []Mode{
	{Undirected: false, Weighted: false},
	{Undirected: false, Weighted: true},
	{Undirected: true, Weighted: false},
	{Undirected: true, Weighted: true},
}

func TestGenerate_ScriptedZeros(t *testing.T) {
	// Every draw is 0: each vertex drops exactly its first candidate.
	g := Generate(randsrc.NewSequence(0), Mode{})

	want := map[string][]string{
		"A": {"D", "E"},
		"B": {"C", "D", "E", "F"},
		"C": {"E", "F"},
		"D": {"B", "E"},
		"E": {"B", "C", "D", "F"},
		"F": {"C", "E"},
	}
	for label, neighbors := range want {
		var got []string
		for _, n := range g.AdjacencyRow(label) {
			got = append(got, n.To)
		}
		assert.Equal(t, neighbors, got, "row %s", label)
	}
	assert.Equal(t, 16, g.EdgeCount())
	// A→D exists without D→A: directed graph is not symmetric.
	m := g.AdjacencyMatrix()
	assert.Equal(t, 1, m[0][3])
	assert.Equal(t, 0, m[3][0])
}

func TestGenerate_WeightedReusesReverseCost(t *testing.T) {
	// Scan seeds for directed pairs that exist both ways.
	found := false
	for seed := uint64(0); seed < 200 && !found; seed++ {
		g := Generate(randsrc.New(seed), Mode{Weighted: true})
		for _, e := range g.Edges() {
			rev, ok := g.FindEdge(e.To, e.From)
			if !ok {
				continue
			}
			found = true
			assert.Equal(t, e.Cost, rev.Cost)
			assert.NotEqual(t, e.ShowCost, rev.ShowCost, "exactly one edge of a pair shows its cost")
		}
	}
	require.True(t, found, "expected at least one bidirectional pair across seeds")
}

func TestGenerate_Properties(t *testing.T) {
	candidates := TemplateSize(DefaultTemplate)

	for _, mode := range allModes {
		for seed := uint64(0); seed < 100; seed++ {
			name := fmt.Sprintf("undirected=%t/weighted=%t/seed=%d", mode.Undirected, mode.Weighted, seed)
			t.Run(name, func(t *testing.T) {
				g := Generate(randsrc.New(seed), mode)
				assertGraphInvariants(t, g, mode, candidates)
			})
		}
	}
}

func assertGraphInvariants(t *testing.T, g *Graph, mode Mode, candidates int) {
	t.Helper()

	vs := g.Vertices()
	assert.Equal(t, DefaultLabels, vs.Labels())

	list := g.AdjacencyList()
	matrix := g.AdjacencyMatrix()
	require.Len(t, list, 6)
	require.Len(t, matrix, 6)

	// Rows sorted, all references inside the vertex set.
	for i, row := range list {
		labels := make([]string, len(row))
		for j, n := range row {
			labels[j] = n.To
			assert.True(t, vs.Contains(n.To), "row %d references %q", i, n.To)
		}
		assert.True(t, sort.StringsAreSorted(labels), "row %d not sorted: %v", i, labels)
	}

	// Diagonal zero, symmetric when undirected.
	for i := range matrix {
		assert.Zero(t, matrix[i][i])
		for j := range matrix {
			if mode.Undirected {
				assert.Equal(t, matrix[i][j], matrix[j][i], "cell %d,%d", i, j)
			}
		}
	}

	// List, matrix and edge set agree exactly.
	present := 0
	for _, e := range g.Edges() {
		fi, _ := vs.Index(e.From)
		ti, _ := vs.Index(e.To)
		if mode.Weighted {
			assert.Equal(t, e.Cost, matrix[fi][ti])
			assert.True(t, e.Cost >= 1 && e.Cost < MaxCost, "cost %d", e.Cost)
		} else {
			assert.Equal(t, 1, matrix[fi][ti])
			assert.Zero(t, e.Cost)
			assert.False(t, e.ShowCost)
		}
	}
	for i := range matrix {
		for j := range matrix[i] {
			if matrix[i][j] != 0 {
				present++
			}
		}
		assert.Len(t, list[i], g.OutDegree(DefaultLabels[i]))
	}
	assert.Equal(t, g.EdgeCount(), present)

	if mode.Undirected {
		assert.Zero(t, g.EdgeCount()%2, "undirected edge count must be even")
	}
	card := g.Cardinality()
	assert.GreaterOrEqual(t, card, 1)
	assert.LessOrEqual(t, card, candidates)
}

func TestGenerate_UnweightedUndirectedScenario(t *testing.T) {
	g := Generate(randsrc.New(7), Mode{Undirected: true, Weighted: false})

	for _, e := range g.Edges() {
		assert.Zero(t, e.Cost)
	}
	for _, row := range g.AdjacencyMatrix() {
		for _, cell := range row {
			assert.Contains(t, []int{0, 1}, cell)
		}
	}
}

func TestPrune(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		src := randsrc.New(seed)
		in := []string{"A", "B", "C", "D", "E"}
		out := prune(src, in)
		assert.GreaterOrEqual(t, len(out), 1)
		assert.LessOrEqual(t, len(out), len(in)-1)
		assert.Len(t, in, 5, "input must not be modified")
	}
}

func TestPrune_SingleCandidateKept(t *testing.T) {
	out := prune(randsrc.NewSequence(0), []string{"B"})
	assert.Equal(t, []string{"B"}, out)

	assert.Empty(t, prune(randsrc.NewSequence(0), nil))
}

func TestGenerateFrom_CustomVertices(t *testing.T) {
	vs, err := NewVertexSet("x", "y", "z")
	require.NoError(t, err)
	template := []Candidates{
		{Vertex: "x", Neighbors: []string{"y"}},
		{Vertex: "y", Neighbors: []string{"z", "q"}},
	}

	g := GenerateFrom(randsrc.NewSequence(0), vs, template, Mode{Undirected: true})

	assert.True(t, g.HasEdge("x", "y"))
	assert.True(t, g.HasEdge("y", "x"))
	// y's first candidate (z) is dropped; q is unknown and ignored.
	assert.False(t, g.HasEdge("y", "z"))
	assert.Equal(t, 1, g.Cardinality())
}
