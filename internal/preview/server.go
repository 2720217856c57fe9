// Package preview serves the assembled routine payloads over HTTP so they
// can be inspected before anything is submitted to Hevy.
package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/hevylift/internal/models"
)

// RoutineSummary is one row of the listing endpoint.
type RoutineSummary struct {
	Index         int    `json:"index"`
	Title         string `json:"title"`
	ExerciseCount int    `json:"exercise_count"`
	SetCount      int    `json:"set_count"`
}

// Server is a read-only view of the assembled payloads. It never mutates
// anything and carries no auth: it is a localhost inspection tool.
type Server struct {
	payloads []models.CreateRoutineRequest
	log      *slog.Logger
	router   chi.Router
}

// New creates a preview server over the given payloads, in submission order.
func New(payloads []models.CreateRoutineRequest, log *slog.Logger) *Server {
	s := &Server{
		payloads: payloads,
		log:      log,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(requestLogging(s.log))
	s.router.Get("/api/v1/routines", s.handleList)
	s.router.Get("/api/v1/routines/{index}", s.handleGet)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	summaries := make([]RoutineSummary, len(s.payloads))
	for i, p := range s.payloads {
		summaries[i] = RoutineSummary{
			Index:         i,
			Title:         p.Routine.Title,
			ExerciseCount: len(p.Routine.Exercises),
			SetCount:      p.SetCount(),
		}
	}
	s.writeJSON(w, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 || idx >= len(s.payloads) {
		http.Error(w, `{"error":"no such routine"}`, http.StatusNotFound)
		return
	}
	s.writeJSON(w, s.payloads[idx])
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

// requestLogging logs each request with its status and duration.
func requestLogging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// statusWriter wraps ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
