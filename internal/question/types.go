package question

import (
	"strings"

	"github.com/abhisek/adjacent/internal/graph"
)

// Kind identifies which graph representation a question asks for.
type Kind string

const (
	KindMatrix Kind = "matrix"
	KindList   Kind = "list"
)

// Template is one entry of the question list. Lines are concatenated to
// form the prompt.
type Template struct {
	Kind  Kind
	Lines []string
}

// Prompt returns the template's text.
func (t Template) Prompt() string {
	return strings.Join(t.Lines, "")
}

// DefaultTemplates is the question list; indices into it are what
// FirstQuestion and LastQuestion bound.
var DefaultTemplates = []Template{
	{Kind: KindMatrix, Lines: []string{"Fill in the adjacency matrix"}},
	{Kind: KindList, Lines: []string{"Fill in the adjacency list"}},
}

// Question is a chosen template bound to its index.
type Question struct {
	Index  int    `json:"index"`
	Kind   Kind   `json:"kind"`
	Prompt string `json:"prompt"`
}

// Submission is a learner's transcription of one representation.
type Submission interface {
	kind() Kind
}

// MatrixSubmission is a learner adjacency matrix, indexed [from][to].
type MatrixSubmission [][]int

// ListSubmission is a learner adjacency list, one row per vertex in vertex
// order. Costs are ignored for unweighted graphs.
type ListSubmission [][]graph.Neighbor

func (MatrixSubmission) kind() Kind { return KindMatrix }
func (ListSubmission) kind() Kind   { return KindList }

// KindOf returns the representation a submission carries.
func KindOf(s Submission) Kind {
	if s == nil {
		return ""
	}
	return s.kind()
}
