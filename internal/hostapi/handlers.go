package hostapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/abhisek/adjacent/internal/capi"
	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/graph"
	"github.com/abhisek/adjacent/internal/mastery"
	"github.com/abhisek/adjacent/internal/question"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// AnswerRequest carries one submission. Exactly one of the fields is used,
// checked in order Matrix, List, Rows.
type AnswerRequest struct {
	Matrix [][]int            `json:"matrix,omitempty"`
	List   [][]graph.Neighbor `json:"list,omitempty"`
	Rows   []string           `json:"rows,omitempty"`
}

// AnswerResponse is the grading result plus the state after it.
type AnswerResponse struct {
	engine.Result
	Phase           mastery.Phase `json:"phase"`
	MasteryAchieved bool          `json:"mastery"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeEngineError maps phase misuse to 409 and bad input to 400.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrNotAwaitingAnswer),
		errors.Is(err, engine.ErrNotGraded),
		errors.Is(err, engine.ErrTerminal),
		errors.Is(err, engine.ErrNotStarted):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, capi.ErrUnknownVariable),
		errors.Is(err, capi.ErrInvalidValue),
		errors.Is(err, capi.ErrReadOnly),
		errors.Is(err, config.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}

// handleState handles GET /v1/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.State())
}

// handleStats handles GET /v1/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Stats())
}

// handleGetVariables handles GET /v1/variables
func (s *Server) handleGetVariables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, capi.Export(s.eng.State()))
}

// handlePutVariables handles PUT /v1/variables. Any accepted change
// regenerates the graph, the way a host variable write does.
func (s *Server) handlePutVariables(w http.ResponseWriter, r *http.Request) {
	var vars map[string]string
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&vars); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cfg, err := capi.Apply(s.eng.Config(), vars)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.eng.Regenerate(cfg); err != nil {
		writeEngineError(w, err)
		return
	}
	s.metrics.GenerationsTotal.WithLabelValues("variables").Inc()
	s.log.Info("variables applied", "count", len(vars))
	writeJSON(w, http.StatusOK, capi.Export(s.eng.State()))
}

// handleQuestion handles GET /v1/question
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.Snapshot())
}

// handleAnswer handles POST /v1/answer
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		res engine.Result
		err error
	)
	switch {
	case req.Matrix != nil:
		res, err = s.eng.Submit(question.MatrixSubmission(req.Matrix))
	case req.List != nil:
		res, err = s.eng.Submit(question.ListSubmission(req.List))
	default:
		res, err = s.eng.SubmitRows(req.Rows)
	}
	if err != nil {
		writeEngineError(w, err)
		return
	}

	q, _ := s.eng.Question()
	result := "incorrect"
	if res.Correct {
		result = "correct"
	}
	s.metrics.AnswersTotal.WithLabelValues(string(q.Kind), result).Inc()
	s.metrics.CorrectInWindow.Set(float64(correctCount(s.eng.Snapshot())))

	st := s.eng.State()
	writeJSON(w, http.StatusOK, AnswerResponse{
		Result:          res,
		Phase:           s.eng.Phase(),
		MasteryAchieved: st.MasteryAchieved,
	})
}

// handleNext handles POST /v1/next
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	if err := s.eng.Next(); err != nil {
		writeEngineError(w, err)
		return
	}
	s.metrics.GenerationsTotal.WithLabelValues("next").Inc()
	writeJSON(w, http.StatusOK, s.eng.Snapshot())
}

// handleRegenerate handles POST /v1/regenerate. An optional JSON config
// body is overlaid on the current configuration.
func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.configFromBody(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.eng.Regenerate(cfg); err != nil {
		writeEngineError(w, err)
		return
	}
	s.metrics.GenerationsTotal.WithLabelValues("regenerate").Inc()
	writeJSON(w, http.StatusOK, s.eng.Snapshot())
}

// handleReset handles POST /v1/reset
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.configFromBody(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if err := s.eng.Reset(cfg); err != nil {
		writeEngineError(w, err)
		return
	}
	s.metrics.GenerationsTotal.WithLabelValues("reset").Inc()
	s.metrics.CorrectInWindow.Set(0)
	s.log.Info("session reset by host", "session_id", s.eng.SessionID())
	writeJSON(w, http.StatusOK, s.eng.Snapshot())
}

func (s *Server) configFromBody(r *http.Request) (config.Config, error) {
	base := s.eng.Config()
	raw, err := readBody(r)
	if err != nil {
		return base, err
	}
	if len(raw) == 0 {
		return base, nil
	}
	return config.Decode(raw, base)
}

func correctCount(snap engine.Snapshot) int {
	n := 0
	for _, o := range snap.History {
		if o == mastery.Correct {
			n++
		}
	}
	return n
}
