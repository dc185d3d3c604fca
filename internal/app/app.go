package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/logger"
	"github.com/abhisek/adjacent/internal/router"
	"github.com/abhisek/adjacent/internal/screen"
	"github.com/abhisek/adjacent/internal/screens/home"
	"github.com/abhisek/adjacent/internal/ui/layout"
)

// Options wires the TUI to a drill engine. Config is what the drill
// applies on regenerate and reset.
type Options struct {
	Engine *engine.Engine
	Config config.Config
	Log    *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *logger.Logger
	width  int
	height int
}

// newAppModel roots the router at the home screen.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	homeScreen := home.New(opts.Engine, opts.Config, log)
	return AppModel{
		router: router.New(homeScreen, router.WithLogger(log.With("component", "router"))),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if layout.IsTooSmall(m.width, m.height) {
			m.log.Debug("terminal below minimum size", "width", m.width, "height", m.height)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// the home screen stays put
			return m, m.router.Pop()
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	return layout.RenderFrame(header, m.router.View(m.width, bodyHeight), footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// ErrNoEngine is returned by Run when Options.Engine is nil.
var ErrNoEngine = errors.New("app: engine is required")

// Run blocks until the user quits.
func Run(opts Options) error {
	if opts.Engine == nil {
		return ErrNoEngine
	}
	m := newAppModel(opts)
	m.log.Info("tui started", "session_id", opts.Engine.SessionID())
	defer m.log.Info("tui stopped", "session_id", opts.Engine.SessionID())

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}
