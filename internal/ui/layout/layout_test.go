package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "L   C    R", spread("L", "C", "R", 10))
	// never collapses parts together
	assert.Equal(t, "left mid right", spread("left", "mid", "right", 4))
}

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader("Drill", "■■□  2/4", 80))
	assert.Equal(t, HeaderHeight, lipgloss.Height(out))
	assert.Contains(t, out, "Adjacent")
	assert.Contains(t, out, "Drill")
	assert.Contains(t, out, "2/4")
}

func TestRenderFooter(t *testing.T) {
	out := ansi.Strip(RenderFooter([]KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}, 80))
	assert.Equal(t, FooterHeight, lipgloss.Height(out))
	assert.Contains(t, out, "Enter Submit   Esc Back")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.True(t, strings.Contains(ansi.Strip(frame), "body"))
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := ansi.Strip(RenderMinSizeMessage(60, 20))
	assert.Contains(t, out, "Terminal too small!")
	assert.Contains(t, out, "Current: 60 x 20")
}
