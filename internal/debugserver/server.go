// Package debugserver exposes a small read-only HTTP surface for local
// inspection of a running Selector during development. It never mutates
// core state — the compositor's real control path is GetBestRefreshRate
// called in-process, not this server.
package debugserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/refreshrate/selector/internal/refreshrate"
)

// Server serves /health, /policy, /current, and /metrics for one Selector.
type Server struct {
	sel *refreshrate.Selector
}

// NewServer builds a Server around an already-constructed Selector.
func NewServer(sel *refreshrate.Selector) *Server {
	return &Server{sel: sel}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/policy", func(w http.ResponseWriter, r *http.Request) {
		p := s.sel.GetPolicy()
		writeJSON(w, http.StatusOK, map[string]any{
			"default_mode_id":       p.DefaultModeID,
			"primary_range_lo_hz":   p.PrimaryRange.Lo.Hz(),
			"primary_range_hi_hz":   p.PrimaryRange.Hi.Hz(),
			"app_range_lo_hz":       p.AppRange.Lo.Hz(),
			"app_range_hi_hz":       p.AppRange.Hi.Hz(),
			"allow_group_switching": p.AllowGroupSwitching,
		})
	})

	r.Get("/current", func(w http.ResponseWriter, r *http.Request) {
		m := s.sel.GetCurrentRefreshRate()
		writeJSON(w, http.StatusOK, map[string]any{
			"id":    m.ID,
			"hz":    m.RefreshRate.Hz(),
			"group": m.Group,
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
