// Package screen defines what the router stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adjacent/internal/ui/layout"
)

// Screen is one page of the app. View draws only the body; the app adds
// the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider fills the right side of the header, e.g. the drill's
// answer history.
type StatusProvider interface {
	Status() string
}
