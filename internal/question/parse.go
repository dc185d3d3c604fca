package question

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/adjacent/internal/graph"
)

// splitTokens splits on whitespace and commas.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// ParseMatrixRow parses one typed matrix row such as "0 1 0 0 1 0" or
// "0,3,0,0,5,0".
func ParseMatrixRow(text string) ([]int, error) {
	tokens := splitTokens(text)
	row := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q", tok)
		}
		row = append(row, n)
	}
	return row, nil
}

// ParseListRow parses one typed adjacency-list row. Entries are neighbor
// labels, optionally followed by ":cost" ("B D" or "B:3 D:5").
func ParseListRow(text string) ([]graph.Neighbor, error) {
	tokens := splitTokens(text)
	row := make([]graph.Neighbor, 0, len(tokens))
	for _, tok := range tokens {
		label, costStr, hasCost := strings.Cut(tok, ":")
		label = strings.ToUpper(strings.TrimSpace(label))
		if label == "" {
			return nil, fmt.Errorf("missing neighbor in %q", tok)
		}
		n := graph.Neighbor{To: label}
		if hasCost {
			cost, err := strconv.Atoi(strings.TrimSpace(costStr))
			if err != nil {
				return nil, fmt.Errorf("invalid cost in %q", tok)
			}
			n.Cost = cost
		}
		row = append(row, n)
	}
	return row, nil
}

// ParseMatrix parses one text row per vertex. Any malformed row makes the
// whole submission empty, which never matches a graph.
func ParseMatrix(rows []string) MatrixSubmission {
	sub := make(MatrixSubmission, 0, len(rows))
	for _, r := range rows {
		row, err := ParseMatrixRow(r)
		if err != nil {
			return MatrixSubmission{}
		}
		sub = append(sub, row)
	}
	return sub
}

// ParseList parses one text row per vertex, with the same malformed-row
// policy as ParseMatrix.
func ParseList(rows []string) ListSubmission {
	sub := make(ListSubmission, 0, len(rows))
	for _, r := range rows {
		row, err := ParseListRow(r)
		if err != nil {
			return ListSubmission{}
		}
		sub = append(sub, row)
	}
	return sub
}

// Parse dispatches to ParseMatrix or ParseList.
func Parse(kind Kind, rows []string) Submission {
	if kind == KindList {
		return ParseList(rows)
	}
	return ParseMatrix(rows)
}
