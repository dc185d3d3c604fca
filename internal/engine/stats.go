package engine

import (
	"maps"
	"time"

	"github.com/abhisek/adjacent/internal/question"
)

// Tally counts graded answers.
type Tally struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// Accuracy returns Correct/Answered, or 0 before any answer.
func (t Tally) Accuracy() float64 {
	if t.Answered == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answered)
}

// Stats summarizes every answer of the current session, not just the
// mastery window.
type Stats struct {
	StartedAt time.Time               `json:"started_at"`
	Total     Tally                   `json:"total"`
	ByKind    map[question.Kind]Tally `json:"by_kind"`
}

func newStats(now time.Time) Stats {
	return Stats{StartedAt: now, ByKind: make(map[question.Kind]Tally)}
}

func (s *Stats) record(kind question.Kind, correct bool) {
	s.Total.Answered++
	k := s.ByKind[kind]
	k.Answered++
	if correct {
		s.Total.Correct++
		k.Correct++
	}
	s.ByKind[kind] = k
}

// Stats returns a copy of the session statistics.
func (e *Engine) Stats() Stats {
	out := e.stats
	out.ByKind = maps.Clone(e.stats.ByKind)
	return out
}

// WithClock sets the time source used to stamp sessions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
