package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/adjacent/internal/logger"
	"github.com/abhisek/adjacent/internal/screen"
)

// PushScreenMsg asks the router to open Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to close the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for Screen without growing the
// stack; the drill hands over to its summary this way.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router keeps the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
	log   *logger.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger traces navigation at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a Router rooted at initial.
func New(initial screen.Screen, opts ...Option) *Router {
	r := &Router{
		stack: []screen.Screen{initial},
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	r.trace("push", s)
	return s.Init()
}

// Pop closes the top screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.trace("pop", top)
	return nil
}

// Replace swaps the top screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	r.trace("replace", s)
	return s.Init()
}

func (r *Router) trace(op string, s screen.Screen) {
	r.log.Debug("screen "+op, "screen", s.Title(), "depth", len(r.stack))
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
