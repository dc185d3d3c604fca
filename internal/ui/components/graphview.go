package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/graph"
	"github.com/abhisek/adjacent/internal/ui/theme"
)

// Vertices sit on a three-column grid. Diagonals step two columns per row
// so they read as 45° in a terminal cell.
const (
	gridCols = 3
	colGap   = 12
	rowGap   = 6
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellLine
	cellVertex
	cellCost
)

type canvas struct {
	w, h  int
	runes [][]rune
	kinds [][]cellKind
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), kinds: make([][]cellKind, h)}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.kinds[y] = make([]cellKind, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = k
}

func (c *canvas) get(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return ' '
	}
	return c.runes[y][x]
}

func (c *canvas) render() string {
	lines := make([]string, c.h)
	for y := range c.runes {
		var b strings.Builder
		for x, r := range c.runes[y] {
			s := string(r)
			switch c.kinds[y][x] {
			case cellLine:
				s = theme.EdgeLine.Render(s)
			case cellVertex:
				s = theme.Vertex.Render(s)
			case cellCost:
				s = theme.EdgeCost.Render(s)
			}
			b.WriteString(s)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

type point struct{ x, y int }

// pair merges the one or two directed edges between two vertices; a is
// always the lower vertex index.
type pair struct {
	a, b   int
	cost   int
	ab, ba bool
}

func collectPairs(vs []string, edges []graph.Edge) []*pair {
	index := make(map[string]int, len(vs))
	for i, l := range vs {
		index[l] = i
	}
	byKey := make(map[[2]int]*pair)
	var out []*pair
	for _, e := range edges {
		f, okf := index[e.From]
		t, okt := index[e.To]
		if !okf || !okt || f == t {
			continue
		}
		a, b := min(f, t), max(f, t)
		p, ok := byKey[[2]int{a, b}]
		if !ok {
			p = &pair{a: a, b: b, cost: e.Cost}
			byKey[[2]int{a, b}] = p
			out = append(out, p)
		}
		if f == a {
			p.ab = true
		} else {
			p.ba = true
		}
		if e.ShowCost {
			p.cost = e.Cost
		}
	}
	return out
}

// GraphView draws the graph on a character grid with a cost label on
// every weighted pair and arrowheads on directed edges. Every vertex keeps
// its grid slot but only those in connected get a box, so isolated
// vertices are left blank. Graphs that do not fit the grid, or have
// nothing connected, are listed edge by edge instead.
func GraphView(vertices, connected []string, edges []graph.Edge, mode graph.Mode) string {
	if len(connected) == 0 || len(vertices) > 2*gridCols {
		return EdgeList(edges, mode)
	}
	shown := make(map[string]bool, len(connected))
	for _, l := range connected {
		shown[l] = true
	}

	rows := (len(vertices) + gridCols - 1) / gridCols
	cols := min(len(vertices), gridCols)
	c := newCanvas(2+(cols-1)*colGap+1, (rows-1)*rowGap+1)

	pos := make([]point, len(vertices))
	for i := range vertices {
		pos[i] = point{x: 1 + (i%gridCols)*colGap, y: (i / gridCols) * rowGap}
	}

	for _, p := range collectPairs(vertices, edges) {
		drawPair(c, pos[p.a], pos[p.b], p, mode)
	}

	for i, l := range vertices {
		if l == "" || !shown[l] {
			continue
		}
		at := pos[i]
		c.set(at.x-1, at.y, '[', cellVertex)
		c.set(at.x, at.y, []rune(l)[0], cellVertex)
		c.set(at.x+1, at.y, ']', cellVertex)
	}
	return c.render()
}

func drawPair(c *canvas, from, to point, p *pair, mode graph.Mode) {
	arrows := !mode.Undirected
	var costAt point

	switch {
	case from.y == to.y:
		for x := from.x + 2; x <= to.x-2; x++ {
			c.set(x, from.y, '─', cellLine)
		}
		if arrows && p.ab {
			c.set(to.x-2, to.y, '>', cellLine)
		}
		if arrows && p.ba {
			c.set(from.x+2, from.y, '<', cellLine)
		}
		costAt = point{(from.x + to.x) / 2, from.y}

	case from.x == to.x:
		for y := from.y + 1; y < to.y; y++ {
			c.set(from.x, y, '│', cellLine)
		}
		if arrows && p.ab {
			c.set(to.x, to.y-1, 'v', cellLine)
		}
		if arrows && p.ba {
			c.set(from.x, from.y+1, '^', cellLine)
		}
		costAt = point{from.x, (from.y + to.y) / 2}

	default:
		dy := to.y - from.y
		ch, other := '\\', '/'
		down, up := '↘', '↖'
		if to.x < from.x {
			ch, other = '/', '\\'
			down, up = '↙', '↗'
		}
		for y := from.y + 1; y < to.y; y++ {
			x := from.x + (y-from.y)*(to.x-from.x)/dy
			r := ch
			if c.get(x, y) == other || c.get(x, y) == 'X' {
				r = 'X'
			}
			c.set(x, y, r, cellLine)
		}
		if arrows && p.ab {
			y := to.y - 1
			c.set(from.x+(y-from.y)*(to.x-from.x)/dy, y, down, cellLine)
		}
		if arrows && p.ba {
			y := from.y + 1
			c.set(from.x+(y-from.y)*(to.x-from.x)/dy, y, up, cellLine)
		}
		y := from.y + 2
		costAt = point{from.x + (y-from.y)*(to.x-from.x)/dy, y}
	}

	if mode.Weighted {
		for i, r := range fmt.Sprint(p.cost) {
			c.set(costAt.x+i, costAt.y, r, cellCost)
		}
	}
}

// EdgeList renders one line per directed edge, "A → B" or "A → B (3)".
// Hidden mirror edges of undirected graphs are collapsed to "A — B".
func EdgeList(edges []graph.Edge, mode graph.Mode) string {
	if len(edges) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("(no edges)")
	}
	arrow := " → "
	if mode.Undirected {
		arrow = " — "
	}
	seen := make(map[[2]string]bool)
	var lines []string
	for _, e := range edges {
		if mode.Undirected {
			if seen[[2]string{e.To, e.From}] {
				continue
			}
			seen[[2]string{e.From, e.To}] = true
		}
		line := theme.Vertex.Render(e.From) + theme.EdgeLine.Render(arrow) + theme.Vertex.Render(e.To)
		if mode.Weighted {
			line += " " + theme.EdgeCost.Render(fmt.Sprintf("(%d)", e.Cost))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
