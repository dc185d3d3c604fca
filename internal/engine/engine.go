package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/graph"
	"github.com/abhisek/adjacent/internal/logger"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/question"
	"github.com/abhisek/adjacent/internal/randsrc"
)

var (
	// ErrNotAwaitingAnswer is returned by Submit outside PhaseAwaitingAnswer.
	ErrNotAwaitingAnswer = errors.New("engine: not awaiting an answer")
	// ErrNotGraded is returned by Next before the current answer is graded.
	ErrNotGraded = errors.New("engine: current question not graded")
	// ErrTerminal is returned once mastery is reached, until Reset.
	ErrTerminal = errors.New("engine: mastery reached")
	// ErrNotStarted is returned while idle with no graph generated.
	ErrNotStarted = errors.New("engine: no graph generated yet")
)

// Engine sequences one learner session: graph generation, question
// selection, grading, and mastery tracking. It is not safe for concurrent
// use; callers serialize access.
type Engine struct {
	cfg       config.Config
	mode      graph.Mode
	src       randsrc.Source
	base      *logger.Logger
	log       *logger.Logger
	templates []question.Template
	now       func() time.Time

	onComplete func(State)
	completed  bool

	sessionID string
	history   *mastery.History
	graph     *graph.Graph
	question  question.Question
	phase     mastery.Phase
	last      *Result
	stats     Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source. Defaults to an entropy-seeded source.
func WithSource(src randsrc.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTemplates replaces the question list.
func WithTemplates(templates []question.Template) Option {
	return func(e *Engine) {
		e.templates = templates
	}
}

// WithCompletionHandler registers fn to run the first time a session
// reaches mastery.
func WithCompletionHandler(fn func(State)) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// WithSessionID fixes the first session's ID instead of generating one.
func WithSessionID(id string) Option {
	return func(e *Engine) {
		e.sessionID = id
	}
}

// New creates an engine and, unless cfg suppresses auto-start, generates
// the first graph and question.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		src:       randsrc.NewRandom(),
		log:       logger.Nop(),
		templates: question.DefaultTemplates,
		now:       time.Now,
		phase:     mastery.PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.templates) == 0 {
		return nil, question.ErrNoTemplates
	}
	if e.sessionID == "" {
		e.sessionID = uuid.New().String()
	}
	e.base = e.log
	e.log = e.base.With("session_id", e.sessionID)

	e.cfg = e.normalize(cfg)
	e.mode = graph.Mode{Undirected: e.cfg.Undirected, Weighted: e.cfg.Weighted}
	e.history = mastery.NewHistory(e.cfg.MasteryDenominator)
	e.stats = newStats(e.now())

	if e.cfg.SuppressAutoStart {
		e.log.Info("auto-start suppressed, waiting for regenerate")
		return e, nil
	}
	if err := e.generate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) normalize(cfg config.Config) config.Config {
	norm, changes := config.Normalize(cfg, len(e.templates))
	for _, c := range changes {
		e.log.Warn("config adjusted", "change", c)
	}
	return norm
}

// generate builds a fresh graph, picks a question and waits for an answer.
func (e *Engine) generate() error {
	mode := graph.Mode{Undirected: e.cfg.Undirected, Weighted: e.cfg.Weighted}
	if e.cfg.RandomizeModes {
		mode.Undirected = e.src.IntN(2) == 1
		mode.Weighted = e.src.IntN(2) == 1
	}

	g := graph.Generate(e.src, mode, graph.WithLogger(e.log))
	q, err := question.Choose(e.src, e.templates, e.cfg.FirstQuestion, e.cfg.LastQuestion)
	if err != nil {
		return fmt.Errorf("choose question: %w", err)
	}

	e.mode = mode
	e.graph = g
	e.question = q
	e.last = nil
	e.phase = mastery.PhaseAwaitingAnswer

	e.log.Debug("graph generated",
		"undirected", mode.Undirected,
		"weighted", mode.Weighted,
		"edges", g.EdgeCount(),
		"cardinality", g.Cardinality(),
		"question", q.Kind,
	)
	return nil
}

// Regenerate applies cfg and replaces the graph and question. The history
// is only rebuilt when the denominator changes.
func (e *Engine) Regenerate(cfg config.Config) error {
	if e.phase == mastery.PhaseTerminal {
		return ErrTerminal
	}
	norm := e.normalize(cfg)
	if norm.MasteryDenominator != e.cfg.MasteryDenominator {
		e.log.Info("history resized", "from", e.cfg.MasteryDenominator, "to", norm.MasteryDenominator)
		e.history = mastery.NewHistory(norm.MasteryDenominator)
	}
	e.cfg = norm
	if err := e.generate(); err != nil {
		return err
	}
	// a lowered numerator can be met by answers already recorded
	if e.checkMastery() {
		e.phase = mastery.PhaseTerminal
	}
	return nil
}

// Next moves from a graded answer to a new graph and question.
func (e *Engine) Next() error {
	switch e.phase {
	case mastery.PhaseIdle:
		return ErrNotStarted
	case mastery.PhaseTerminal:
		return ErrTerminal
	case mastery.PhaseGraded:
		return e.generate()
	default:
		return ErrNotGraded
	}
}

// Submit grades sub against the current graph. Malformed or mismatched
// submissions are graded incorrect; the error only reports phase misuse.
func (e *Engine) Submit(sub question.Submission) (Result, error) {
	switch e.phase {
	case mastery.PhaseIdle:
		return Result{}, ErrNotStarted
	case mastery.PhaseAwaitingAnswer:
	default:
		return Result{}, ErrNotAwaitingAnswer
	}

	correct := question.Check(e.graph, e.question.Kind, sub)
	e.history.Record(correct)
	e.stats.record(e.question.Kind, correct)
	e.phase = mastery.AfterGrade(e.history.Achieved(e.cfg.MasteryNumerator))

	res := Result{
		Correct:    correct,
		AnswerRows: question.AnswerRows(e.graph, e.question.Kind),
	}

	e.log.Info("answer graded",
		"question", e.question.Kind,
		"submitted", question.KindOf(sub),
		"correct", correct,
		"correct_count", e.history.CorrectCount(),
		"window", e.history.Len(),
	)

	armed := !e.completed
	res.Completed = e.checkMastery() && armed
	e.last = &res
	return res, nil
}

// checkMastery reports whether the history meets the numerator and fires
// the completion handler the first time it does in a session.
func (e *Engine) checkMastery() bool {
	if !e.history.Achieved(e.cfg.MasteryNumerator) {
		return false
	}
	if !e.completed {
		e.completed = true
		e.log.Info("mastery achieved")
		if e.onComplete != nil {
			e.onComplete(e.State())
		}
	}
	return true
}

// SubmitRows parses learner text rows for the current question and grades
// them.
func (e *Engine) SubmitRows(rows []string) (Result, error) {
	if e.phase == mastery.PhaseIdle {
		return Result{}, ErrNotStarted
	}
	return e.Submit(question.Parse(e.question.Kind, rows))
}

// Reset starts a new session: fresh ID, empty history, re-armed completion
// signal and a new graph.
func (e *Engine) Reset(cfg config.Config) error {
	e.sessionID = uuid.New().String()
	e.log = e.base.With("session_id", e.sessionID)
	e.cfg = e.normalize(cfg)
	e.history = mastery.NewHistory(e.cfg.MasteryDenominator)
	e.stats = newStats(e.now())
	e.completed = false
	e.log.Info("session reset")
	return e.generate()
}

// Phase returns the current phase.
func (e *Engine) Phase() mastery.Phase {
	return e.phase
}

// SessionID returns the current session ID.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Config returns the normalized configuration in effect.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Graph returns the current graph, or nil while idle.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Question returns the current question and whether one exists.
func (e *Engine) Question() (question.Question, bool) {
	return e.question, e.phase != mastery.PhaseIdle
}
