package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/logger"
	"github.com/abhisek/adjacent/internal/router"
	"github.com/abhisek/adjacent/internal/screen"
	"github.com/abhisek/adjacent/internal/screens/drill"
	"github.com/abhisek/adjacent/internal/ui/components"
	"github.com/abhisek/adjacent/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
	cfg  config.Config
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. START DRILL resumes the engine's session;
// NEW SESSION resets it first.
func New(eng *engine.Engine, cfg config.Config, log *logger.Logger) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START DRILL", Key: "s", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(eng, cfg, log)}
			}
		}},
		{Label: "NEW SESSION", Key: "n", Action: func() tea.Cmd {
			return func() tea.Msg {
				if err := eng.Reset(cfg); err != nil {
					log.Error("reset failed", "error", err)
				}
				return router.PushScreenMsg{Screen: drill.New(eng, cfg, log)}
			}
		}},
		{Label: "EXIT", Key: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		cfg:  cfg,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes header and footer
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderRulesBar(h.cfg, cw),
		h.menu.View(cw),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
