package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adjacent/internal/graph"
)

func TestParseMatrixRow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"spaces", "0 1 0 0 1 0", []int{0, 1, 0, 0, 1, 0}, false},
		{"commas", "0,3,0, 0,5,0", []int{0, 3, 0, 0, 5, 0}, false},
		{"empty", "   ", []int{}, false},
		{"letter", "0 x 1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatrixRow(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListRow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []graph.Neighbor
		wantErr bool
	}{
		{"labels", "b d", []graph.Neighbor{{To: "B"}, {To: "D"}}, false},
		{"weighted", "B:3, E:7", []graph.Neighbor{{To: "B", Cost: 3}, {To: "E", Cost: 7}}, false},
		{"empty row", "", []graph.Neighbor{}, false},
		{"bad cost", "B:x", nil, true},
		{"missing label", ":4", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListRow(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_MalformedRowEmptiesSubmission(t *testing.T) {
	m := ParseMatrix([]string{"0 1", "oops"})
	assert.Empty(t, m)

	l := ParseList([]string{"B", "C:?"})
	assert.Empty(t, l)
}

func TestParse_Dispatch(t *testing.T) {
	assert.Equal(t, KindMatrix, KindOf(Parse(KindMatrix, []string{"0"})))
	assert.Equal(t, KindList, KindOf(Parse(KindList, []string{"A"})))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestFormatListRow(t *testing.T) {
	row := []graph.Neighbor{{To: "B", Cost: 2}, {To: "F", Cost: 9}}
	assert.Equal(t, "B:2 F:9", FormatListRow(row, true))
	assert.Equal(t, "B F", FormatListRow(row, false))
}
