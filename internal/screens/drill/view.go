package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/ui/components"
	"github.com/abhisek/adjacent/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	snap := s.eng.Snapshot()

	var body string
	switch snap.Phase {
	case mastery.PhaseIdle:
		body = renderIdle(width)
	case mastery.PhaseTerminal:
		body = renderMastery(snap, width)
	default:
		body = s.renderQuestion(snap, width)
	}

	if s.errMsg != "" {
		body += "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg)
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(body)
}

func renderIdle(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		"\n\n"+theme.Hint.Render("Press Enter to draw the first graph"))
}

// renderQuestion lays the graph out on the left and the answer rows on the
// right, with feedback underneath once graded.
func (s *DrillScreen) renderQuestion(snap engine.Snapshot, width int) string {
	var b strings.Builder

	prompt := ""
	if snap.Question != nil {
		prompt = snap.Question.Prompt
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(modeLine(snap)))
	b.WriteString("\n\n")

	graphBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(components.GraphView(snap.Vertices, snap.Connected, snap.Edges, snap.Mode))

	rows := make([]string, len(s.inputs))
	for i, in := range s.inputs {
		rows[i] = in.View()
	}
	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, graphBox, "  ", inputBox)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(panes))

	if snap.LastResult != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(renderFeedback(snap)))
	}
	return b.String()
}

func modeLine(snap engine.Snapshot) string {
	dir := "directed"
	if snap.Mode.Undirected {
		dir = "undirected"
	}
	weight := "unweighted"
	if snap.Mode.Weighted {
		weight = "weighted"
	}
	return dir + ", " + weight
}

func renderFeedback(snap engine.Snapshot) string {
	res := snap.LastResult
	if res.Correct {
		return theme.Correct.Render("✓ Correct!")
	}

	lines := []string{theme.Incorrect.Render("✗ Not quite. The answer is:")}
	for i, row := range res.AnswerRows {
		label := ""
		if i < len(snap.Vertices) {
			label = snap.Vertices[i]
		}
		lines = append(lines, theme.Vertex.Render(label+": ")+theme.Body.Render(row))
	}
	return strings.Join(lines, "\n")
}

func renderMastery(snap engine.Snapshot, width int) string {
	correct := 0
	for _, o := range snap.History {
		if o == mastery.Correct {
			correct++
		}
	}
	cw := components.ContentWidth(width)
	msg := theme.Correct.Render("★ Mastery achieved ★") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("%d of your last %d answers were correct.", correct, len(snap.History))) + "\n\n" +
		components.NewHistoryBar(snap.History, snap.Numerator).View()
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n" + components.ArcadeCard(msg, cw))
}
