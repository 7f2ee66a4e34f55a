package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"telegram-registration-bot/internal/config"
)

// Pinger is anything whose backing connection can be health-checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server exposes the operational surface: liveness, readiness and Prometheus
// metrics. It carries no bot traffic.
type Server struct {
	cfg    *config.AdminConfig
	log    *zerolog.Logger
	checks map[string]Pinger
	server *http.Server
}

func NewServer(cfg *config.AdminConfig, logger *zerolog.Logger, checks map[string]Pinger) *Server {
	return &Server{cfg: cfg, log: logger, checks: checks}
}

func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info().Int("port", s.cfg.Port).Msg("ops HTTP server listening")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// handleReadyz pings every registered dependency; any failure reports 503 so
// the orchestrator holds traffic until the stores are back.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for name, dep := range s.checks {
		if err := dep.Ping(ctx); err != nil {
			s.log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			http.Error(w, fmt.Sprintf("%s unavailable", name), http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "READY")
}
