package question

import (
	"strconv"
	"strings"

	"github.com/abhisek/adjacent/internal/graph"
)

// FormatMatrixRow renders a matrix row the way ParseMatrixRow reads it.
func FormatMatrixRow(row []int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// FormatListRow renders a list row the way ParseListRow reads it.
func FormatListRow(row []graph.Neighbor, weighted bool) string {
	parts := make([]string, len(row))
	for i, n := range row {
		if weighted {
			parts[i] = n.To + ":" + strconv.Itoa(n.Cost)
		} else {
			parts[i] = n.To
		}
	}
	return strings.Join(parts, " ")
}

// AnswerRows returns the correct answer for kind as one text row per vertex.
func AnswerRows(g *graph.Graph, kind Kind) []string {
	var rows []string
	switch kind {
	case KindList:
		weighted := g.Mode().Weighted
		for _, row := range g.AdjacencyList() {
			rows = append(rows, FormatListRow(row, weighted))
		}
	default:
		for _, row := range g.AdjacencyMatrix() {
			rows = append(rows, FormatMatrixRow(row))
		}
	}
	return rows
}

// Authoritative returns the graph's own representation as a submission.
func Authoritative(g *graph.Graph, kind Kind) Submission {
	if kind == KindList {
		return ListSubmission(g.AdjacencyList())
	}
	return MatrixSubmission(g.AdjacencyMatrix())
}
