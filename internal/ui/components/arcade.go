package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/ui/theme"
)

// ContentWidth is the inner width shared by the home and mastery cards:
// the frame width less border and padding, clamped to 20..60.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame draws a double border around content and centres it.
func CabinetFrame(content string, width, height int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center)
	return frame.Render(content)
}

// ArcadeCard boxes content at width cw.
func ArcadeCard(content string, cw int) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(cw - 2).
		Align(lipgloss.Center)
	return card.Render(content)
}
