package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/question"
	"github.com/abhisek/adjacent/internal/router"
)

func testSummary() *SummaryScreen {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	snap := engine.Snapshot{
		History:         []mastery.Outcome{mastery.Correct, mastery.Incorrect, mastery.Correct, mastery.Correct, mastery.Correct},
		Numerator:       4,
		MasteryAchieved: true,
	}
	stats := engine.Stats{
		StartedAt: start,
		Total:     engine.Tally{Answered: 6, Correct: 4},
		ByKind: map[question.Kind]engine.Tally{
			question.KindMatrix: {Answered: 4, Correct: 2},
			question.KindList:   {Answered: 2, Correct: 2},
		},
	}
	return New(snap, stats, start.Add(3*time.Minute+7*time.Second))
}

func TestSummaryScreen_View(t *testing.T) {
	out := ansi.Strip(testSummary().View(100, 30))

	for _, want := range []string{
		"Mastery achieved",
		"Duration: 3:07",
		"Questions: 6",
		"Correct: 4",
		"Accuracy: 67%",
		"Adjacency matrix   2/4 correct",
		"Adjacency list     2/2 correct",
		"4/4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q\n%s", want, out)
		}
	}
}

func TestSummaryScreen_SkipsUnansweredKinds(t *testing.T) {
	s := testSummary()
	delete(s.stats.ByKind, question.KindList)

	out := ansi.Strip(s.View(100, 30))
	if strings.Contains(out, "Adjacency list") {
		t.Error("expected unanswered kind to be omitted")
	}
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	_, cmd := testSummary().Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	if got := testSummary().Title(); got != "Session Summary" {
		t.Errorf("Title = %q", got)
	}
}
