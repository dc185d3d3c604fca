package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/randsrc"
	"github.com/abhisek/adjacent/internal/router"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	cfg := config.Default()
	eng, err := engine.New(cfg, engine.WithSource(randsrc.New(11)))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	m := newAppModel(Options{Engine: eng, Config: cfg})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func TestAppModel_HomeView(t *testing.T) {
	m := testModel(t)
	out := ansi.Strip(m.render())
	if !strings.Contains(out, "START DRILL") {
		t.Error("expected home menu")
	}
	if !strings.Contains(out, "Navigate") {
		t.Error("expected default footer hints")
	}
}

func TestAppModel_DrillHeaderShowsStatus(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(AppModel)

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	out := ansi.Strip(m.render())
	if !strings.Contains(out, "Drill") {
		t.Error("expected drill title in header")
	}
	if !strings.Contains(out, "0/4") {
		t.Error("expected history status in header")
	}
	if !strings.Contains(out, "Submit") {
		t.Error("expected drill key hints in footer")
	}
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	m := testModel(t)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d after esc on home, want 1", m.router.Depth())
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected the home menu to push the drill")
	}
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d after push, want 2", m.router.Depth())
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d after esc on drill, want 1", m.router.Depth())
	}
}

func TestRun_RequiresEngine(t *testing.T) {
	if err := Run(Options{}); !errors.Is(err, ErrNoEngine) {
		t.Errorf("Run = %v, want ErrNoEngine", err)
	}
}
