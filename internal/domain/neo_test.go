package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apophisJSON = `{
  "id": "2099942",
  "name": "99942 Apophis (2004 MN4)",
  "is_potentially_hazardous_asteroid": true,
  "estimated_diameter": {
    "kilometers": {"estimated_diameter_min": 0.31, "estimated_diameter_max": 0.70},
    "meters": {"estimated_diameter_min": 310, "estimated_diameter_max": 700}
  },
  "close_approach_data": [{
    "close_approach_date": "2029-04-13",
    "relative_velocity": {"kilometers_per_second": "7.42", "kilometers_per_hour": "26712"},
    "miss_distance": {"astronomical": "0.000254", "kilometers": "38012"}
  }]
}`

func TestNEO_ImpactParameters(t *testing.T) {
	var n NEO
	require.NoError(t, json.Unmarshal([]byte(apophisJSON), &n))

	p := n.ImpactParameters(10, -40)
	assert.Equal(t, 505.0, p.DiameterMeters)
	assert.Equal(t, 7.42, p.VelocityKmPerSec)
	assert.Equal(t, DefaultDensityKgPerM3, p.DensityKgPerM3)
	assert.Equal(t, 10.0, p.Latitude)
	assert.Equal(t, -40.0, p.Longitude)
	assert.True(t, n.IsPotentiallyHazardous)
}

func TestNEO_Fallbacks(t *testing.T) {
	t.Run("kilometers only", func(t *testing.T) {
		n := NEO{EstimatedDiameter: EstimatedDiameter{Kilometers: DiameterRange{Min: 1, Max: 3}}}
		assert.Equal(t, 2000.0, n.DiameterMeters())
	})

	t.Run("no diameter", func(t *testing.T) {
		assert.Equal(t, 75.0, NEO{}.DiameterMeters())
	})

	t.Run("velocity from km/h", func(t *testing.T) {
		n := NEO{CloseApproachData: []CloseApproach{{RelativeVelocity: RelativeVelocity{KilometersPerHour: "36000"}}}}
		assert.Equal(t, 10.0, n.VelocityKmPerSec())
	})

	t.Run("unparseable velocity", func(t *testing.T) {
		n := NEO{CloseApproachData: []CloseApproach{{RelativeVelocity: RelativeVelocity{KilometersPerSecond: "fast"}}}}
		assert.Equal(t, 20.0, n.VelocityKmPerSec())
	})

	t.Run("no approaches", func(t *testing.T) {
		assert.Equal(t, 20.0, NEO{}.VelocityKmPerSec())
	})
}
