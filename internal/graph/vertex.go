package graph

import (
	"errors"
	"fmt"
)

// DefaultLabels is the fixed six-vertex domain every drill graph uses.
var DefaultLabels = []string{"A", "B", "C", "D", "E", "F"}

// ErrDuplicateVertex is returned when a vertex set repeats a label.
var ErrDuplicateVertex = errors.New("duplicate vertex label")

// ErrEmptyVertex is returned for a blank label.
var ErrEmptyVertex = errors.New("empty vertex label")

// VertexSet is an ordered, immutable set of vertex labels. Position in the
// set is the row/column index used by the adjacency matrix and the row index
// of the adjacency list; Index and Label are inverse lookups.
type VertexSet struct {
	labels []string
	index  map[string]int
}

// NewVertexSet builds a vertex set in the given order.
func NewVertexSet(labels ...string) (*VertexSet, error) {
	vs := &VertexSet{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for _, l := range labels {
		if l == "" {
			return nil, ErrEmptyVertex
		}
		if _, dup := vs.index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, l)
		}
		vs.index[l] = len(vs.labels)
		vs.labels = append(vs.labels, l)
	}
	return vs, nil
}

// DefaultVertices returns a fresh A..F vertex set.
func DefaultVertices() *VertexSet {
	vs, err := NewVertexSet(DefaultLabels...)
	if err != nil {
		panic(err)
	}
	return vs
}

// Len returns the number of vertices.
func (vs *VertexSet) Len() int {
	return len(vs.labels)
}

// Labels returns the labels in set order.
func (vs *VertexSet) Labels() []string {
	out := make([]string, len(vs.labels))
	copy(out, vs.labels)
	return out
}

// Index returns the position of label, or false if it is not in the set.
func (vs *VertexSet) Index(label string) (int, bool) {
	i, ok := vs.index[label]
	return i, ok
}

// Label returns the label at position i, or false if i is out of range.
func (vs *VertexSet) Label(i int) (string, bool) {
	if i < 0 || i >= len(vs.labels) {
		return "", false
	}
	return vs.labels[i], true
}

// Contains reports whether label is in the set.
func (vs *VertexSet) Contains(label string) bool {
	_, ok := vs.index[label]
	return ok
}
