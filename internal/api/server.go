// Package api serves the campaign journal over HTTP. Every endpoint is a
// read-only GET.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/talgya/campaign-trail/internal/persistence"
)

const (
	defaultLimit = 20
	maxLimit     = 500
)

// Store is the slice of the journal the server reads.
type Store interface {
	RecentStops(limit int) ([]persistence.StopRow, error)
	RecentHeadlines(limit int) ([]persistence.HeadlineRow, error)
	ReporterHistory(limit int) ([]persistence.ReporterRow, error)
}

// Server serves journal queries.
type Server struct {
	Store   Store
	Addr    string
	Limiter *RateLimiter // nil disables rate limiting
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/stops", s.limit(s.handleStops))
	mux.HandleFunc("/api/v1/headlines", s.limit(s.handleHeadlines))
	mux.HandleFunc("/api/v1/reporter", s.limit(s.handleReporter))
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("HTTP API starting", "addr", s.Addr, "rate_limited", s.Limiter != nil)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) limit(next http.HandlerFunc) http.HandlerFunc {
	if s.Limiter == nil {
		return getOnly(next)
	}
	return getOnly(RateLimitMiddleware(s.Limiter, next))
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Store.RecentStops(queryLimit(r))
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, rows)
}

func (s *Server) handleHeadlines(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Store.RecentHeadlines(queryLimit(r))
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, rows)
}

func (s *Server) handleReporter(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Store.ReporterHistory(queryLimit(r))
	if err != nil {
		serverError(w, err)
		return
	}
	resp := map[string]any{"history": rows}
	if len(rows) > 0 {
		resp["current"] = rows[0]
	}
	writeJSON(w, resp)
}

func queryLimit(r *http.Request) int {
	limit := defaultLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= maxLimit {
			limit = n
		}
	}
	return limit
}

func serverError(w http.ResponseWriter, err error) {
	slog.Error("journal query failed", "error", err)
	http.Error(w, "journal unavailable", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
