package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDHeader = "X-Request-ID"

// NEOLooker fetches a near-earth object by its NeoWs ID.
type NEOLooker interface {
	Lookup(ctx context.Context, id string) (domain.NEO, error)
}

// Simulator runs an impact on the remote simulation backend.
type Simulator interface {
	Simulate(ctx context.Context, p domain.ImpactParameters) (domain.ImpactAnalysis, error)
}

// Option configures optional collaborators of the Server.
type Option func(*Server)

// WithNEO enables POST /v1/neo/{id}/analyze.
func WithNEO(n NEOLooker) Option {
	return func(s *Server) { s.neo = n }
}

// WithSimulator enables POST /v1/impact/simulate.
func WithSimulator(sim Simulator) Option {
	return func(s *Server) { s.simulator = sim }
}

// WithMetrics records per-route analysis outcomes.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithPlanetRadius sets the default scene planet radius for crater estimates.
func WithPlanetRadius(units float64) Option {
	return func(s *Server) { s.planetRadiusUnits = units }
}

// Server exposes health, readiness, metrics, and the impact analysis API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger

	neo               NEOLooker
	simulator         Simulator
	metrics           *observability.Metrics
	planetRadiusUnits float64
}

// NewServer creates an HTTP server with the health routes and the /v1 API.
func NewServer(addr string, ready sharedobs.ReadinessChecker, logger *slog.Logger, opts ...Option) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger:            logger,
		planetRadiusUnits: 6.371,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRequestID(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/impact/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/impact/simulate", s.handleSimulate)
	mux.HandleFunc("GET /v1/impact/zones", s.handleZones)
	mux.HandleFunc("POST /v1/crater/estimate", s.handleCrater)
	mux.HandleFunc("GET /v1/history", s.handleHistory)
	mux.HandleFunc("POST /v1/neo/{id}/analyze", s.handleNEOAnalyze)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// withRequestID propagates or assigns an X-Request-ID and logs the request.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Debug("http request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
