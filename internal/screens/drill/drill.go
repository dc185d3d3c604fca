package drill

import (
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/logger"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/question"
	"github.com/abhisek/adjacent/internal/router"
	"github.com/abhisek/adjacent/internal/screen"
	"github.com/abhisek/adjacent/internal/screens/summary"
	"github.com/abhisek/adjacent/internal/ui/components"
	"github.com/abhisek/adjacent/internal/ui/layout"
)

// DrillScreen shows the current graph and one input row per vertex.
type DrillScreen struct {
	eng    *engine.Engine
	cfg    config.Config
	log    *logger.Logger
	inputs []components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatusProvider = (*DrillScreen)(nil)

// New creates a drill screen over eng. cfg is what Regenerate and Reset
// apply when the learner starts or restarts.
func New(eng *engine.Engine, cfg config.Config, log *logger.Logger) *DrillScreen {
	if log == nil {
		log = logger.Nop()
	}
	s := &DrillScreen{eng: eng, cfg: cfg, log: log}
	s.buildInputs()
	return s
}

func (s *DrillScreen) Init() tea.Cmd {
	return s.focusInput(0)
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) Status() string {
	snap := s.eng.Snapshot()
	return components.NewHistoryBar(snap.History, snap.Numerator).View()
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.eng.Phase() {
	case mastery.PhaseIdle:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case mastery.PhaseGraded:
		return []layout.KeyHint{
			{Key: "N/Enter", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	case mastery.PhaseTerminal:
		return []layout.KeyHint{
			{Key: "R", Description: "New session"},
			{Key: "Enter", Description: "Summary"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓/Tab", Description: "Row"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	return s, s.updateFocused(msg)
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch s.eng.Phase() {
	case mastery.PhaseIdle:
		if key == "enter" {
			return s, s.apply(s.eng.Regenerate(s.cfg))
		}

	case mastery.PhaseAwaitingAnswer:
		switch key {
		case "up", "shift+tab":
			return s, s.focusInput(s.focus - 1)
		case "down", "tab":
			return s, s.focusInput(s.focus + 1)
		case "enter":
			s.submit()
			return s, nil
		}
		return s, s.updateFocused(msg)

	case mastery.PhaseGraded:
		if key == "n" || key == "enter" {
			return s, s.apply(s.eng.Next())
		}

	case mastery.PhaseTerminal:
		switch key {
		case "r":
			return s, s.apply(s.eng.Reset(s.cfg))
		case "enter":
			done := summary.New(s.eng.Snapshot(), s.eng.Stats(), time.Now())
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: done} }
		}
	}
	return s, nil
}

// apply reports err, or rebuilds the inputs for a freshly generated
// question.
func (s *DrillScreen) apply(err error) tea.Cmd {
	if err != nil {
		s.errMsg = err.Error()
		if isPhaseError(err) {
			s.log.Debug("drill action rejected", "error", err)
		} else {
			s.log.Error("drill action failed", "error", err)
		}
		return nil
	}
	s.errMsg = ""
	s.buildInputs()
	return s.focusInput(0)
}

func (s *DrillScreen) submit() {
	rows := make([]string, len(s.inputs))
	for i, in := range s.inputs {
		rows[i] = in.Value()
	}
	if _, err := s.eng.SubmitRows(rows); err != nil {
		s.errMsg = err.Error()
		return
	}

	q, _ := s.eng.Question()
	g := s.eng.Graph()
	for i := range s.inputs {
		s.inputs[i].Mark(question.RowCorrect(g, q.Kind, i, rows[i]))
		s.inputs[i].Blur()
	}
}

func (s *DrillScreen) buildInputs() {
	s.inputs = nil
	s.focus = 0
	q, ok := s.eng.Question()
	if !ok {
		return
	}

	snap := s.eng.Snapshot()
	allowed, placeholder := components.MatrixChars, "0 1 0 0 1 0"
	if q.Kind == question.KindList {
		allowed, placeholder = components.ListChars, "B D"
		if snap.Mode.Weighted {
			placeholder = "B:3 D:5"
		}
	}
	for _, v := range snap.Vertices {
		in := components.NewTextInput(v+": ", placeholder, 40)
		in.Allowed = allowed
		s.inputs = append(s.inputs, in)
	}
}

func (s *DrillScreen) focusInput(i int) tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	i = (i + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[i].Focus()
}

func (s *DrillScreen) updateFocused(msg tea.Msg) tea.Cmd {
	if s.eng.Phase() != mastery.PhaseAwaitingAnswer || len(s.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func isPhaseError(err error) bool {
	return errors.Is(err, engine.ErrNotAwaitingAnswer) ||
		errors.Is(err, engine.ErrNotGraded) ||
		errors.Is(err, engine.ErrTerminal) ||
		errors.Is(err, engine.ErrNotStarted)
}
