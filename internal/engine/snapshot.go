package engine

import (
	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/graph"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/question"
)

// State is what the engine reports back to its host: the configuration in
// effect, with the modes actually used for the current graph, plus the
// mastery flag.
type State struct {
	config.Config
	MasteryAchieved bool `json:"mastery"`
}

// Result is the grading outcome of one submission.
type Result struct {
	Correct bool `json:"correct"`
	// AnswerRows is the correct answer, one text row per vertex.
	AnswerRows []string `json:"answer_rows"`
	// Completed is set on the one answer that first reaches mastery in a
	// session.
	Completed bool `json:"completed"`
}

// Snapshot is everything a presentation layer needs to draw the drill.
type Snapshot struct {
	SessionID       string             `json:"session_id"`
	Phase           mastery.Phase      `json:"phase"`
	Mode            graph.Mode         `json:"mode"`
	Vertices        []string           `json:"vertices"`
	Connected       []string           `json:"connected"`
	Edges           []graph.Edge       `json:"edges"`
	AdjacencyList   [][]graph.Neighbor `json:"adjacency_list"`
	AdjacencyMatrix [][]int            `json:"adjacency_matrix"`
	Question        *question.Question `json:"question,omitempty"`
	History         []mastery.Outcome  `json:"history"`
	Numerator       int                `json:"numerator"`
	LastResult      *Result            `json:"last_result,omitempty"`
	MasteryAchieved bool               `json:"mastery"`
}

// State returns the outbound host state.
func (e *Engine) State() State {
	cfg := e.cfg
	cfg.Undirected = e.mode.Undirected
	cfg.Weighted = e.mode.Weighted
	return State{
		Config:          cfg,
		MasteryAchieved: e.history.Achieved(e.cfg.MasteryNumerator),
	}
}

// Snapshot returns a copy of the current presentation state. While idle
// the graph fields are empty.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:       e.sessionID,
		Phase:           e.phase,
		Mode:            e.mode,
		Vertices:        graph.DefaultVertices().Labels(),
		History:         e.history.Entries(),
		Numerator:       e.cfg.MasteryNumerator,
		MasteryAchieved: e.history.Achieved(e.cfg.MasteryNumerator),
	}
	if e.graph != nil {
		s.Vertices = e.graph.Vertices().Labels()
		s.Connected = e.graph.ConnectedVertices()
		s.Edges = e.graph.Edges()
		s.AdjacencyList = e.graph.AdjacencyList()
		s.AdjacencyMatrix = e.graph.AdjacencyMatrix()
	}
	if q, ok := e.Question(); ok {
		s.Question = &q
	}
	if e.last != nil {
		r := *e.last
		s.LastResult = &r
	}
	return s
}
