package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/randsrc"
	"github.com/abhisek/adjacent/internal/router"
	"github.com/abhisek/adjacent/internal/screens/drill"
)

func testHome(t *testing.T, cfg config.Config) (*HomeScreen, *engine.Engine) {
	t.Helper()
	eng, err := engine.New(cfg, engine.WithSource(randsrc.New(5)))
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return New(eng, cfg, nil), eng
}

func TestHomeScreen_View(t *testing.T) {
	cfg := config.Default()
	h, _ := testHome(t, cfg)

	out := ansi.Strip(h.View(120, 30))
	for _, want := range []string{"START DRILL", "NEW SESSION", "EXIT", "4 OF LAST 5", "RANDOM GRAPHS"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_FixedModes(t *testing.T) {
	cfg := config.Default()
	cfg.RandomizeModes = false
	cfg.Undirected = true
	cfg.Weighted = true
	h, _ := testHome(t, cfg)

	out := ansi.Strip(h.View(120, 30))
	if !strings.Contains(out, "UNDIRECTED · WEIGHTED") {
		t.Errorf("view missing fixed modes:\n%s", out)
	}
}

func TestHomeScreen_StartDrill(t *testing.T) {
	h, _ := testHome(t, config.Default())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*drill.DrillScreen); !ok {
		t.Errorf("pushed %T, want *drill.DrillScreen", msg.Screen)
	}
}

func TestHomeScreen_NewSessionResets(t *testing.T) {
	cfg := config.Default()
	h, eng := testHome(t, cfg)
	before := eng.SessionID()
	if _, err := eng.SubmitRows(nil); err != nil {
		t.Fatalf("SubmitRows: %v", err)
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}

	if eng.SessionID() == before {
		t.Error("expected a new session id")
	}
	if eng.Phase() != mastery.PhaseAwaitingAnswer {
		t.Errorf("phase = %s, want awaiting_answer", eng.Phase())
	}
}

func TestHomeScreen_Title(t *testing.T) {
	h, _ := testHome(t, config.Default())
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_QuitHotkey(t *testing.T) {
	h, _ := testHome(t, config.Default())
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
