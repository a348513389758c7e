package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBackendResult(t *testing.T) {
	body := `{
	  "impact_effects": {
	    "energy": {"megatons": 12.5},
	    "radii": {"total": 1.2, "severe": 2.4, "moderate": 3.6, "light": 7.2},
	    "crater": {"final_diameter_km": 1.9}
	  },
	  "impact_location": {"lat": 0, "lon": -150},
	  "target_type": "water"
	}`
	var r BackendResult
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	a := FromBackendResult(r)
	assert.Equal(t, SourceBackend, a.Source)
	assert.Equal(t, 12500.0, a.Energy.Kilotons)
	assert.Equal(t, 12.5, a.Energy.Megatons)
	assert.Equal(t, 3.6, a.Radii.Moderate)
	assert.Zero(t, a.Radii.Thermal)
	assert.Equal(t, ImpactOcean, a.ImpactType)
	assert.Equal(t, SeverityCatastrophic, a.Summary.Severity)
	assert.Equal(t, ThreatBlast, a.Summary.PrimaryThreat)
	assert.Equal(t, 1.2, a.Consequences.Population.EvacuationRadiusKm)
	assert.Equal(t, "N/A", a.Historical.Event.Name)
	assert.Contains(t, a.Consequences.Seismic.Description, "not provided")
}

func TestFromBackendResult_MissingBlocks(t *testing.T) {
	a := FromBackendResult(BackendResult{ImpactLocation: &BackendLocation{Lat: 55.75, Lon: 37.62}})
	assert.Equal(t, SeverityUnknown, a.Summary.Severity)
	assert.Equal(t, EnergyResult{}, a.Energy)
	assert.Equal(t, ImpactLand, a.ImpactType)
}

func TestBackendSeverity(t *testing.T) {
	tests := []struct {
		kt       float64
		expected Severity
	}{
		{1, SeverityMinimal},
		{10, SeverityLow},
		{100, SeverityModerate},
		{1000, SeveritySevere},
		{1e4, SeverityCatastrophic},
		{1e5, SeverityMassExtinction},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, backendSeverity(tt.kt), "kt=%v", tt.kt)
	}
}

func TestNewBackendRequest(t *testing.T) {
	req := NewBackendRequest(ImpactParameters{DiameterMeters: 100, VelocityKmPerSec: 20, Latitude: 0, Longitude: -150})
	assert.Equal(t, "water", req.TargetType)
	assert.Equal(t, DefaultDensityKgPerM3, req.Density)
	assert.Equal(t, -150.0, req.ImpactLocation.Lon)
}
