package graph

import (
	"slices"

	"github.com/abhisek/adjacent/internal/randsrc"
)

// MaxCost is the exclusive upper bound for random edge costs.
const MaxCost = 10

// Candidates lists the vertices a vertex may connect to.
type Candidates struct {
	Vertex    string
	Neighbors []string
}

// DefaultTemplate is the hand-curated candidate set for the A..F layout
// (three columns, two rows). It only pairs vertices that sit next to each
// other on screen so drawn graphs stay readable. Slice order is the
// generation order.
var DefaultTemplate = []Candidates{
	{Vertex: "A", Neighbors: []string{"B", "D", "E"}},
	{Vertex: "B", Neighbors: []string{"A", "C", "D", "E", "F"}},
	{Vertex: "C", Neighbors: []string{"B", "E", "F"}},
	{Vertex: "D", Neighbors: []string{"A", "B", "E"}},
	{Vertex: "E", Neighbors: []string{"A", "B", "C", "D", "F"}},
	{Vertex: "F", Neighbors: []string{"B", "C", "E"}},
}

// TemplateSize returns the total number of candidate edges in a template.
func TemplateSize(template []Candidates) int {
	n := 0
	for _, c := range template {
		n += len(c.Neighbors)
	}
	return n
}

// Generate builds a random graph over the default vertices and template.
func Generate(src randsrc.Source, mode Mode, opts ...Option) *Graph {
	return GenerateFrom(src, DefaultVertices(), DefaultTemplate, mode, opts...)
}

// GenerateFrom builds a random graph over vs using template.
//
// For each template vertex, in order, a random non-empty proper subset of
// its candidates is discarded and an edge is added to every survivor.
// Weighted pairs share one cost: the first edge of a pair draws the cost
// and shows it, the reverse edge reuses it hidden. Undirected graphs add
// the mirror of every edge with the same cost, hidden.
func GenerateFrom(src randsrc.Source, vs *VertexSet, template []Candidates, mode Mode, opts ...Option) *Graph {
	g := New(vs, mode, opts...)

	for _, c := range template {
		for _, to := range prune(src, c.Neighbors) {
			cost, show := 0, false
			if mode.Weighted {
				if existing := g.EdgeCost(to, c.Vertex); existing >= 0 {
					cost = existing
				} else {
					cost = 1 + src.IntN(MaxCost-1)
					show = true
				}
			}
			g.AddEdge(c.Vertex, to, cost, show)
			if mode.Undirected {
				g.AddEdge(to, c.Vertex, cost, false)
			}
		}
	}
	return g
}

// prune discards between 1 and n-1 random candidates. Sets of one or
// fewer candidates are returned whole so no vertex is pruned to nothing.
func prune(src randsrc.Source, candidates []string) []string {
	kept := slices.Clone(candidates)
	if len(kept) <= 1 {
		return kept
	}
	remove := 1 + src.IntN(len(kept)-1)
	for i := 0; i < remove; i++ {
		idx := src.IntN(len(kept))
		kept = slices.Delete(kept, idx, idx+1)
	}
	return kept
}
