package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/controltower/pkg/usecase"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	baseURL string
	metrics prometheus.Gatherer
	now     func() time.Time
}

type Options func(*Server)

// WithBaseURL sets the public URL of the dashboard served by /api/config
func WithBaseURL(baseURL string) Options {
	return func(s *Server) {
		s.baseURL = baseURL
	}
}

// WithMetrics exposes the collectors of g on /metrics
func WithMetrics(g prometheus.Gatherer) Options {
	return func(s *Server) {
		s.metrics = g
	}
}

func WithClock(now func() time.Time) Options {
	return func(s *Server) {
		s.now = now
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleConfig)

		r.Route("/risks", func(r chi.Router) {
			r.Get("/", s.handleListRisks)
			r.Get("/{id}", s.handleGetRisk)
			r.Patch("/{id}", s.handlePatchRisk)
		})
		r.Get("/timeline", s.handleTimeline)
		r.Get("/coach/{componentRiskId}", s.handleCoach)

		r.Route("/mitigations", func(r chi.Router) {
			r.Get("/", s.handleListMitigations)
			r.Post("/{mitigationId}/execute", s.handleExecute)
		})

		r.Get("/suppliers", s.handleListSuppliers)
		r.Get("/plants", s.handleListPlants)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
