package domain

import "math"

// ImpactType is the coarse surface classification of ground zero.
type ImpactType string

const (
	ImpactOcean ImpactType = "OCEAN"
	ImpactLand  ImpactType = "LAND"
)

// IsOcean reports whether the impact was classified as an ocean strike.
func (t ImpactType) IsOcean() bool { return t == ImpactOcean }

// TargetType returns the "water"/"land" vocabulary used by the simulation backend.
func (t ImpactType) TargetType() string {
	if t.IsOcean() {
		return "water"
	}
	return "land"
}

// ClassifyImpact applies longitude/latitude band rules, in order:
//
//	Pacific-like:  -60 < lat < 60 and (lng > 120 or lng < -70)
//	Atlantic-like: -60 < lat < 60 and -70 < lng < 20
//	Indian-like:   -60 < lat < 30 and  20 < lng < 120
//	fallback:      |lat| < 60 and (lng < -30 or lng > 120)
//
// Anything else is LAND. The bands are a teaching approximation; they put the
// whole American east coast (lng < -70) in the Pacific-like band.
func ClassifyImpact(lat, lng float64) ImpactType {
	midLatitudes := lat > -60 && lat < 60

	switch {
	case midLatitudes && (lng > 120 || lng < -70):
		return ImpactOcean
	case midLatitudes && lng > -70 && lng < 20:
		return ImpactOcean
	case lat > -60 && lat < 30 && lng > 20 && lng < 120:
		return ImpactOcean
	case math.Abs(lat) < 60 && (lng < -30 || lng > 120):
		return ImpactOcean
	default:
		return ImpactLand
	}
}
