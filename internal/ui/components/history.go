package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/ui/theme"
)

// HistoryBar draws the answer window as one block per slot, oldest first,
// followed by the correct count against the mastery threshold.
type HistoryBar struct {
	Entries   []mastery.Outcome
	Numerator int
}

// NewHistoryBar creates a history bar.
func NewHistoryBar(entries []mastery.Outcome, numerator int) HistoryBar {
	return HistoryBar{Entries: entries, Numerator: numerator}
}

// View renders the bar.
func (h HistoryBar) View() string {
	var b strings.Builder
	correct := 0
	for _, o := range h.Entries {
		switch o {
		case mastery.Correct:
			correct++
			b.WriteString(theme.HistoryCorrect.Render("■"))
		case mastery.Incorrect:
			b.WriteString(theme.HistoryIncorrect.Render("■"))
		default:
			b.WriteString(theme.HistoryUnanswered.Render("□"))
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", correct, h.Numerator)))
	return b.String()
}
