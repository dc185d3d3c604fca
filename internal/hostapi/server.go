// Package hostapi serves the drill to an embedding host over HTTP: the
// host reads and writes configuration variables, fetches the current
// question, and submits answers.
package hostapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/logger"
)

// DefaultAddr is the listen address used when none is given.
const DefaultAddr = "127.0.0.1:8484"

// Server wraps one engine. Every request holds mu for its whole duration.
type Server struct {
	mu      sync.Mutex
	eng     *engine.Engine
	log     *logger.Logger
	metrics *Metrics
	router  *mux.Router
	server  *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics shares a metrics set, typically the one whose MasteryReached
// was registered as the engine's completion handler.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewServer creates a server for eng listening on addr.
func NewServer(eng *engine.Engine, addr string, opts ...Option) *Server {
	s := &Server{
		eng: eng,
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if addr == "" {
		addr = DefaultAddr
	}
	s.router = s.routes()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.metrics.CorrectInWindow.Set(float64(correctCount(eng.Snapshot())))
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.instrument)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/state", s.locked(s.handleState)).Methods("GET")
	v1.HandleFunc("/variables", s.locked(s.handleGetVariables)).Methods("GET")
	v1.HandleFunc("/variables", s.locked(s.handlePutVariables)).Methods("PUT")
	v1.HandleFunc("/stats", s.locked(s.handleStats)).Methods("GET")
	v1.HandleFunc("/question", s.locked(s.handleQuestion)).Methods("GET")
	v1.HandleFunc("/answer", s.locked(s.handleAnswer)).Methods("POST")
	v1.HandleFunc("/next", s.locked(s.handleNext)).Methods("POST")
	v1.HandleFunc("/regenerate", s.locked(s.handleRegenerate)).Methods("POST")
	v1.HandleFunc("/reset", s.locked(s.handleReset)).Methods("POST")
	return r
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("host api listening", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("host api shutting down")
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) locked(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		h(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		s.log.Debug("request",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
