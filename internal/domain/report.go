package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Scenario is the wire shape of an impact request on the source topic.
// MassKg and SceneVelocity are optional; when MassKg is set the report also
// carries a crater estimate for the globe. An unset SceneVelocity maps to the
// slowest entry speed.
type Scenario struct {
	ID               string  `json:"id,omitempty"`
	DiameterMeters   float64 `json:"diameter_m"`
	VelocityKmPerSec float64 `json:"velocity_km_s"`
	DensityKgPerM3   float64 `json:"density,omitempty"`
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
	MassKg           float64 `json:"mass_kg,omitempty"`
	SceneVelocity    float64 `json:"scene_velocity,omitempty"`
}

// Parameters returns the impact parameters with defaults applied.
func (s Scenario) Parameters() ImpactParameters {
	return ImpactParameters{
		DiameterMeters:   s.DiameterMeters,
		VelocityKmPerSec: s.VelocityKmPerSec,
		DensityKgPerM3:   s.DensityKgPerM3,
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
	}.WithDefaults()
}

// ImpactReport is the sink-topic payload.
type ImpactReport struct {
	ID          string          `json:"id"`
	Scenario    Scenario        `json:"scenario"`
	Analysis    ImpactAnalysis  `json:"analysis"`
	Crater      *CraterEstimate `json:"crater,omitempty"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// ParseScenario decodes a source message. It does not validate physics.
func ParseScenario(raw RawEvent) (Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(raw.Value, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if s.ID == "" && len(raw.Key) > 0 {
		s.ID = string(raw.Key)
	}
	return s, nil
}

// BuildReport analyzes a scenario and stamps it with an ID and time.
func BuildReport(s Scenario, planetRadiusUnits float64) (ImpactReport, error) {
	p := s.Parameters()
	analysis, err := AnalyzeImpact(p)
	if err != nil {
		return ImpactReport{}, fmt.Errorf("analyze scenario %q: %w", s.ID, err)
	}

	r := ImpactReport{
		ID:          s.ID,
		Scenario:    s,
		Analysis:    analysis,
		ProcessedAt: clock.Now().UTC(),
	}
	if r.ID == "" {
		r.ID = ScenarioID(p)
	}

	crater, err := s.Crater(planetRadiusUnits)
	if err != nil {
		return ImpactReport{}, fmt.Errorf("estimate crater %q: %w", r.ID, err)
	}
	r.Crater = crater
	return r, nil
}

// Crater sizes the globe crater for the scenario, or returns nil when the
// scenario carries no mass.
func (s Scenario) Crater(planetRadiusUnits float64) (*CraterEstimate, error) {
	if s.MassKg == 0 {
		return nil, nil
	}
	c, err := EstimateCrater(s.MassKg, s.SceneVelocity, planetRadiusUnits)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SerializeReport marshals a report into a sink message keyed by report ID.
func SerializeReport(r ImpactReport) (OutputEvent, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize impact report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(r.ID),
		Value: data,
		Headers: map[string]string{
			"impact_type":  string(r.Analysis.ImpactType),
			"severity":     string(r.Analysis.Summary.Severity),
			"processed_at": r.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}

// ScenarioID derives a deterministic ID from the impact parameters so
// replays of the same scenario produce the same report key.
func ScenarioID(p ImpactParameters) string {
	input := fmt.Sprintf("%g|%g|%g|%.4f|%.4f",
		p.DiameterMeters, p.VelocityKmPerSec, p.DensityKgPerM3, p.Latitude, p.Longitude)
	hash := sha256.Sum256([]byte(input))
	return "impact-" + hex.EncodeToString(hash[:8])
}
