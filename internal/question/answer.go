package question

import (
	"slices"
	"strings"

	"github.com/abhisek/adjacent/internal/graph"
)

// Check grades a submission against the graph's representation for kind.
// A submission of the other representation, a nil graph, or any shape
// mismatch is simply incorrect.
func Check(g *graph.Graph, kind Kind, sub Submission) bool {
	if g == nil || sub == nil {
		return false
	}
	switch kind {
	case KindMatrix:
		m, ok := sub.(MatrixSubmission)
		return ok && CheckMatrix(g, m)
	case KindList:
		l, ok := sub.(ListSubmission)
		return ok && CheckList(g, l)
	default:
		return false
	}
}

// CheckMatrix compares every cell of the learner matrix with the graph's
// adjacency matrix. There is no partial credit.
func CheckMatrix(g *graph.Graph, sub MatrixSubmission) bool {
	want := g.AdjacencyMatrix()
	if len(sub) != len(want) {
		return false
	}
	for f := range want {
		if len(sub[f]) != len(want[f]) {
			return false
		}
		for t := range want[f] {
			if sub[f][t] != want[f][t] {
				return false
			}
		}
	}
	return true
}

// CheckList compares the learner list row by row and entry by entry.
//
// Normalization rules:
//   - Neighbor labels are trimmed and compared case-insensitively
//   - Costs are compared only when the graph is weighted
func CheckList(g *graph.Graph, sub ListSubmission) bool {
	want := g.AdjacencyList()
	weighted := g.Mode().Weighted
	if len(sub) != len(want) {
		return false
	}
	for f := range want {
		if !listRowMatches(want[f], sub[f], weighted) {
			return false
		}
	}
	return true
}

func listRowMatches(want, got []graph.Neighbor, weighted bool) bool {
	if len(got) != len(want) {
		return false
	}
	for i, w := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i].To), w.To) {
			return false
		}
		if weighted && got[i].Cost != w.Cost {
			return false
		}
	}
	return true
}

// RowCorrect grades a single typed row against row index i of the graph's
// representation for kind.
func RowCorrect(g *graph.Graph, kind Kind, i int, text string) bool {
	if g == nil || i < 0 || i >= g.Vertices().Len() {
		return false
	}
	switch kind {
	case KindMatrix:
		got, err := ParseMatrixRow(text)
		return err == nil && slices.Equal(got, g.AdjacencyMatrix()[i])
	case KindList:
		got, err := ParseListRow(text)
		return err == nil && listRowMatches(g.AdjacencyList()[i], got, g.Mode().Weighted)
	default:
		return false
	}
}
