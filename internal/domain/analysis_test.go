package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeImpact_Chelyabinsk(t *testing.T) {
	a, err := AnalyzeImpact(ImpactParameters{
		DiameterMeters:   20,
		VelocityKmPerSec: 19,
		DensityKgPerM3:   3300,
		Latitude:         54.8,
		Longitude:        61.1,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceLocal, a.Source)
	assert.InDelta(t, 500, a.Energy.Kilotons, 250)
	assert.Equal(t, ImpactLand, a.ImpactType)
	assert.Equal(t, "Chelyabinsk", a.Historical.Event.Name)
	assert.Equal(t, "similar to Chelyabinsk", a.Historical.ComparisonText)
	assert.Equal(t, SeveritySevere, a.Summary.Severity)
	assert.Equal(t, a.Historical.SeverityLabel, a.Summary.Severity)
	assert.Equal(t, ThreatLocal, a.Summary.PrimaryThreat)
	assert.Equal(t, RiskLow, a.Consequences.Tsunami.RiskLevel)
	assert.Equal(t, RiskHigh, a.Consequences.Fire.RiskLevel)
	assert.Equal(t, a.Radii.Fireball, a.Consequences.Fire.RadiusKm)
	assert.Equal(t, a.Radii.Light, a.Consequences.Population.EvacuationRadiusKm)
}

func TestAnalyzeImpact_PrimaryThreat(t *testing.T) {
	tests := []struct {
		name     string
		p        ImpactParameters
		expected string
	}{
		{"ocean", ImpactParameters{DiameterMeters: 100, VelocityKmPerSec: 20, Latitude: 0, Longitude: -150}, ThreatTsunami},
		{"land global", ImpactParameters{DiameterMeters: 1000, VelocityKmPerSec: 20, Latitude: 50, Longitude: 90}, ThreatGlobalClimate},
		{"land regional", ImpactParameters{DiameterMeters: 50, VelocityKmPerSec: 20, Latitude: 50, Longitude: 90}, ThreatRegional},
		{"land local", ImpactParameters{DiameterMeters: 20, VelocityKmPerSec: 20, Latitude: 50, Longitude: 90}, ThreatLocal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AnalyzeImpact(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.Summary.PrimaryThreat)
		})
	}
}

func TestAnalyzeImpact_DefaultDensity(t *testing.T) {
	withDefault, err := AnalyzeImpact(ImpactParameters{DiameterMeters: 50, VelocityKmPerSec: 20})
	require.NoError(t, err)
	explicit, err := AnalyzeImpact(ImpactParameters{DiameterMeters: 50, VelocityKmPerSec: 20, DensityKgPerM3: DefaultDensityKgPerM3})
	require.NoError(t, err)
	assert.Equal(t, explicit, withDefault)
}

func TestAnalyzeImpact_Idempotent(t *testing.T) {
	p := ImpactParameters{DiameterMeters: 340, VelocityKmPerSec: 12.6, DensityKgPerM3: 3000, Latitude: -23.55, Longitude: -46.63}

	first, err := AnalyzeImpact(p)
	require.NoError(t, err)
	second, err := AnalyzeImpact(p)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("analysis differs between calls (-first +second):\n%s", diff)
	}
}

func TestAnalyzeImpact_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		p    ImpactParameters
	}{
		{"zero diameter", ImpactParameters{VelocityKmPerSec: 20}},
		{"negative velocity", ImpactParameters{DiameterMeters: 10, VelocityKmPerSec: -1}},
		{"nan diameter", ImpactParameters{DiameterMeters: math.NaN(), VelocityKmPerSec: 20}},
		{"negative density", ImpactParameters{DiameterMeters: 10, VelocityKmPerSec: 20, DensityKgPerM3: -2}},
		{"latitude out of range", ImpactParameters{DiameterMeters: 10, VelocityKmPerSec: 20, Latitude: 91}},
		{"longitude out of range", ImpactParameters{DiameterMeters: 10, VelocityKmPerSec: 20, Longitude: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AnalyzeImpact(tt.p)
			require.ErrorIs(t, err, ErrInvalidParameter)
			assert.Equal(t, ImpactAnalysis{}, a)
		})
	}
}
