package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/couchcryptid/impact-sim/internal/adapter/geojson"
	"github.com/couchcryptid/impact-sim/internal/adapter/neo"
	"github.com/couchcryptid/impact-sim/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const maxBodyBytes = 1 << 20

// Route labels for the http_analyses_total metric.
const (
	routeAnalyze  = "analyze"
	routeSimulate = "simulate"
	routeZones    = "zones"
	routeCrater   = "crater"
	routeNEO      = "neo_analyze"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, routeAnalyze, &req) {
		return
	}

	analysis, err := domain.AnalyzeImpact(req.parameters())
	if err != nil {
		s.fail(w, routeAnalyze, err)
		return
	}
	s.succeed(w, routeAnalyze, analysis)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if s.simulator == nil {
		s.unavailable(w, routeSimulate, "simulation backend is not configured")
		return
	}

	var req analyzeRequest
	if !s.decode(w, r, routeSimulate, &req) {
		return
	}

	analysis, err := s.simulator.Simulate(r.Context(), req.parameters())
	if err != nil {
		s.fail(w, routeSimulate, err)
		return
	}
	s.succeed(w, routeSimulate, analysis)
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	req, err := zonesQuery(r.URL.Query())
	if err == nil {
		err = validate.Struct(req)
	}
	if err != nil {
		s.fail(w, routeZones, err)
		return
	}

	p := req.parameters()
	analysis, err := domain.AnalyzeImpact(p)
	if err != nil {
		s.fail(w, routeZones, err)
		return
	}

	data, err := geojson.AnalysisZones(p, analysis).MarshalJSON()
	if err != nil {
		s.fail(w, routeZones, err)
		return
	}
	s.record(routeZones, "success")
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleCrater(w http.ResponseWriter, r *http.Request) {
	var req craterRequest
	if !s.decode(w, r, routeCrater, &req) {
		return
	}

	radius := req.PlanetRadiusUnits
	if radius == 0 {
		radius = s.planetRadiusUnits
	}
	crater, err := domain.EstimateCrater(req.MassKg, req.SceneVelocity, radius)
	if err != nil {
		s.fail(w, routeCrater, err)
		return
	}
	s.succeed(w, routeCrater, crater)
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.HistoricalEvents())
}

func (s *Server) handleNEOAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.neo == nil {
		s.unavailable(w, routeNEO, "NEO lookups are not configured")
		return
	}

	var req neoAnalyzeRequest
	if !s.decode(w, r, routeNEO, &req) {
		return
	}

	obj, err := s.neo.Lookup(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, routeNEO, err)
		return
	}

	p := obj.ImpactParameters(req.Latitude, req.Longitude)
	analysis, err := domain.AnalyzeImpact(p)
	if err != nil {
		s.fail(w, routeNEO, err)
		return
	}
	s.succeed(w, routeNEO, neoAnalyzeResponse{
		NEO: neoSummary{
			ID:                     obj.ID,
			Name:                   obj.Name,
			IsPotentiallyHazardous: obj.IsPotentiallyHazardous,
		},
		Parameters: p,
		Analysis:   analysis,
	})
}

// decode reads and validates a JSON body. It writes the error response and
// returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, route string, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.record(route, "invalid")
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed JSON body: " + err.Error()})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		s.fail(w, route, err)
		return false
	}
	return true
}

func (s *Server) succeed(w http.ResponseWriter, route string, body any) {
	s.record(route, "success")
	sharedobs.WriteJSON(w, http.StatusOK, body)
}

func (s *Server) unavailable(w http.ResponseWriter, route, msg string) {
	s.record(route, "unavailable")
	sharedobs.WriteJSON(w, http.StatusServiceUnavailable, errorResponse{Error: msg})
}

// fail maps an error onto a status: invalid input is 400, a missing NEO is
// 404, anything else came from upstream and is 502.
func (s *Server) fail(w http.ResponseWriter, route string, err error) {
	if resp, ok := fieldError(err); ok {
		s.record(route, "invalid")
		sharedobs.WriteJSON(w, http.StatusBadRequest, resp)
		return
	}
	if errors.Is(err, neo.ErrNotFound) {
		s.record(route, "not_found")
		sharedobs.WriteJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	s.record(route, "upstream_error")
	s.logger.Error("analysis request failed", "route", route, "error", err)
	sharedobs.WriteJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
}

func (s *Server) record(route, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.HTTPAnalyses.WithLabelValues(route, outcome).Inc()
}
