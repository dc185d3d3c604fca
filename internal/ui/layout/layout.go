// Package layout draws the chrome around every screen: a header bar with
// the app name, screen title and status, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/ui/theme"
)

// The drill needs room for a six-vertex graph next to six answer rows.
const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool   { return width < CompactWidthThreshold }
func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }

// IsTooSmall reports whether the terminal cannot fit the drill.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to grow the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nAdjacent needs at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the app name on the left, title in the middle and
// status (which may be pre-styled) on the right.
func RenderHeader(title, status string, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Adjacent")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	return bar.Width(width).Render(spread(name, mid, status, width-4))
}

// spread places center in the middle of inner columns, keeping at least
// one space between the three parts.
func spread(left, center, right string, inner int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max((inner-cw)/2-lw, 1)
	gapR := max(inner-lw-gapL-cw-rw, 1)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderFooter draws the key hints in order.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(h.Description))
	}
	return bar.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, giving content whatever
// height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
