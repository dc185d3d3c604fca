package graph

import (
	"slices"
	"strings"

	"github.com/abhisek/adjacent/internal/logger"
)

// Edge is a directed connection between two vertices.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Cost int    `json:"cost"`
	// ShowCost marks the edge that owns the cost label when an undirected
	// or weighted pair shares one cost.
	ShowCost bool `json:"show_cost"`
}

// Neighbor is one entry of an adjacency-list row.
type Neighbor struct {
	To   string `json:"to"`
	Cost int    `json:"cost,omitempty"`
}

// Mode selects directionality and weighting for a graph.
type Mode struct {
	Undirected bool `json:"undirected"`
	Weighted   bool `json:"weighted"`
}

// Graph owns the authoritative edge set for one generation plus the
// adjacency list and adjacency matrix derived from it. Both views are kept
// in step with every accepted AddEdge.
type Graph struct {
	vertices  *VertexSet
	mode      Mode
	edges     []Edge
	pairs     map[[2]int]int
	adjacency [][]Neighbor
	matrix    [][]int
	log       *logger.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used to trace rejected edges.
func WithLogger(l *logger.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates an empty graph over vs.
func New(vs *VertexSet, mode Mode, opts ...Option) *Graph {
	n := vs.Len()
	g := &Graph{
		vertices:  vs,
		mode:      mode,
		pairs:     make(map[[2]int]int),
		adjacency: make([][]Neighbor, n),
		matrix:    make([][]int, n),
		log:       logger.Nop(),
	}
	for i := range g.matrix {
		g.matrix[i] = make([]int, n)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Vertices returns the graph's vertex set.
func (g *Graph) Vertices() *VertexSet {
	return g.vertices
}

// Mode returns the directionality and weighting the graph was built with.
func (g *Graph) Mode() Mode {
	return g.mode
}

// AddEdge inserts a directed edge and updates both derived views.
// Self-loops, negative costs, unknown endpoints and duplicate (from,to)
// pairs are ignored; the return value reports whether the edge was added.
func (g *Graph) AddEdge(from, to string, cost int, showCost bool) bool {
	fi, fok := g.vertices.Index(from)
	ti, tok := g.vertices.Index(to)
	switch {
	case !fok || !tok:
		g.reject(from, to, cost, "unknown vertex")
		return false
	case fi == ti:
		g.reject(from, to, cost, "self-loop")
		return false
	case cost < 0:
		g.reject(from, to, cost, "negative cost")
		return false
	}
	key := [2]int{fi, ti}
	if _, exists := g.pairs[key]; exists {
		g.reject(from, to, cost, "duplicate")
		return false
	}

	g.pairs[key] = len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Cost: cost, ShowCost: showCost})

	row := g.adjacency[fi]
	pos, _ := slices.BinarySearchFunc(row, to, func(n Neighbor, label string) int {
		return strings.Compare(n.To, label)
	})
	entry := Neighbor{To: to}
	if g.mode.Weighted {
		entry.Cost = cost
	}
	g.adjacency[fi] = slices.Insert(row, pos, entry)

	if g.mode.Weighted {
		g.matrix[fi][ti] = cost
	} else {
		g.matrix[fi][ti] = 1
	}
	return true
}

func (g *Graph) reject(from, to string, cost int, reason string) {
	g.log.Debug("edge ignored", "from", from, "to", to, "cost", cost, "reason", reason)
}

// FindEdge returns the edge from→to, if present.
func (g *Graph) FindEdge(from, to string) (Edge, bool) {
	fi, fok := g.vertices.Index(from)
	ti, tok := g.vertices.Index(to)
	if !fok || !tok {
		return Edge{}, false
	}
	i, ok := g.pairs[[2]int{fi, ti}]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.FindEdge(from, to)
	return ok
}

// EdgeCost returns the cost of from→to, or -1 if there is no such edge.
func (g *Graph) EdgeCost(from, to string) int {
	e, ok := g.FindEdge(from, to)
	if !ok {
		return -1
	}
	return e.Cost
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AdjacencyList returns one row per vertex (in vertex order), each sorted
// ascending by neighbor label. Costs are zero for unweighted graphs.
func (g *Graph) AdjacencyList() [][]Neighbor {
	out := make([][]Neighbor, len(g.adjacency))
	for i, row := range g.adjacency {
		out[i] = slices.Clone(row)
		if out[i] == nil {
			out[i] = []Neighbor{}
		}
	}
	return out
}

// AdjacencyRow returns the adjacency-list row for label.
func (g *Graph) AdjacencyRow(label string) []Neighbor {
	i, ok := g.vertices.Index(label)
	if !ok {
		return nil
	}
	return slices.Clone(g.adjacency[i])
}

// AdjacencyMatrix returns the n×n matrix indexed [from][to]. A cell holds the
// edge cost for weighted graphs, 1 for present edges in unweighted graphs,
// and 0 where there is no edge.
func (g *Graph) AdjacencyMatrix() [][]int {
	out := make([][]int, len(g.matrix))
	for i, row := range g.matrix {
		out[i] = slices.Clone(row)
	}
	return out
}

// Cardinality is the number of edges, counting each mirrored pair once in
// undirected graphs.
func (g *Graph) Cardinality() int {
	if g.mode.Undirected {
		return len(g.edges) / 2
	}
	return len(g.edges)
}

// OutDegree counts edges leaving label.
func (g *Graph) OutDegree(label string) int {
	i, ok := g.vertices.Index(label)
	if !ok {
		return 0
	}
	return len(g.adjacency[i])
}

// InDegree counts edges arriving at label.
func (g *Graph) InDegree(label string) int {
	j, ok := g.vertices.Index(label)
	if !ok {
		return 0
	}
	count := 0
	for i := range g.matrix {
		if _, exists := g.pairs[[2]int{i, j}]; exists {
			count++
		}
	}
	return count
}

// Degree counts edges incident to label: once per neighbor for undirected
// graphs, in+out for directed graphs.
func (g *Graph) Degree(label string) int {
	if g.mode.Undirected {
		return g.OutDegree(label)
	}
	return g.InDegree(label) + g.OutDegree(label)
}

// ConnectedVertices returns, in vertex order, the labels with degree ≥ 1.
func (g *Graph) ConnectedVertices() []string {
	var out []string
	for _, l := range g.vertices.labels {
		if g.Degree(l) > 0 {
			out = append(out, l)
		}
	}
	return out
}
