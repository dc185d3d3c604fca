package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/question"
	"github.com/abhisek/adjacent/internal/router"
	"github.com/abhisek/adjacent/internal/screen"
	"github.com/abhisek/adjacent/internal/ui/components"
	"github.com/abhisek/adjacent/internal/ui/layout"
	"github.com/abhisek/adjacent/internal/ui/theme"
)

// SummaryScreen displays the results of a finished session.
type SummaryScreen struct {
	snap     engine.Snapshot
	stats    engine.Stats
	duration time.Duration
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the session ending at end.
func New(snap engine.Snapshot, stats engine.Stats, end time.Time) *SummaryScreen {
	return &SummaryScreen{
		snap:     snap,
		stats:    stats,
		duration: max(end.Sub(stats.StartedAt), 0),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	title := "Session complete!"
	if s.snap.MasteryAchieved {
		title = "★ Mastery achieved ★"
	}
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), title)
	b.WriteString("\n")

	mins := int(s.duration.Minutes())
	secs := int(s.duration.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim), fmt.Sprintf("Duration: %d:%02d", mins, secs))
	b.WriteString("\n")

	total := s.stats.Total
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
			total.Answered, total.Correct, total.Accuracy()*100))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "By question")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, kind := range []question.Kind{question.KindMatrix, question.KindList} {
		t, ok := s.stats.ByKind[kind]
		if !ok || t.Answered == 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if t.Correct == t.Answered {
			style = style.Foreground(theme.Success)
		}
		center(style, fmt.Sprintf("  %-18s %d/%d correct", kindName(kind), t.Correct, t.Answered))
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "Last answers")
	center(lipgloss.NewStyle(), components.NewHistoryBar(s.snap.History, s.snap.Numerator).View())

	return b.String()
}

func kindName(k question.Kind) string {
	switch k {
	case question.KindMatrix:
		return "Adjacency matrix"
	case question.KindList:
		return "Adjacency list"
	default:
		return string(k)
	}
}
