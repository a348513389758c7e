package domain

import "math"

// Scene speed to real entry velocity mapping.
const (
	minSceneSpeed    = 0.2
	maxSceneSpeed    = 2.0
	minImpactSpeedKm = 11.0
	maxImpactSpeedKm = 70.0

	// MetersPerSceneUnit is the visualization scale: 1 unit = 1000 km.
	MetersPerSceneUnit = 1e6
)

// CraterEstimate sizes the crater mesh drawn on the globe.
type CraterEstimate struct {
	VelocityKmPerSec        float64 `json:"velocity_km_s"`
	EnergyJoules            float64 `json:"energy_joules"`
	TransientDiameterMeters float64 `json:"transient_diameter_m"`
	FinalDiameterMeters     float64 `json:"final_diameter_m"`
	SceneRadiusUnits        float64 `json:"scene_radius_units"`
	ExaggerationFactor      float64 `json:"exaggeration_factor"`
}

// SceneSpeedToKmPerSec maps the 0.2–2.0 scene speed linearly onto 11–70 km/s,
// clamped at both ends.
func SceneSpeedToKmPerSec(sceneSpeed float64) float64 {
	v := minImpactSpeedKm + ((sceneSpeed-minSceneSpeed)/(maxSceneSpeed-minSceneSpeed))*(maxImpactSpeedKm-minImpactSpeedKm)
	return clamp(v, minImpactSpeedKm, maxImpactSpeedKm)
}

// EstimateCrater converts impactor mass and scene speed into crater
// dimensions and a visual radius in scene units.
//
// The transient diameter law 0.032·E^(1/3.4) is empirical and unrelated to the
// cube-root damage radii; keep the coefficients as they are so the globe
// renders the same crater for the same inputs.
func EstimateCrater(massKg, sceneVelocity, planetRadiusUnits float64) (CraterEstimate, error) {
	if err := requirePositive("mass_kg", massKg); err != nil {
		return CraterEstimate{}, err
	}
	if math.IsNaN(sceneVelocity) || math.IsInf(sceneVelocity, 0) {
		return CraterEstimate{}, &ParameterError{Field: "scene_velocity", Value: sceneVelocity, Reason: "must be finite"}
	}
	if err := requirePositive("planet_radius_units", planetRadiusUnits); err != nil {
		return CraterEstimate{}, err
	}

	kmS := SceneSpeedToKmPerSec(sceneVelocity)
	joules := kineticEnergyJoules(massKg, kmS)
	if math.IsInf(joules, 0) {
		return CraterEstimate{}, &ParameterError{Field: "mass_kg", Value: massKg, Reason: "energy overflows float64"}
	}

	transient := 0.032 * math.Pow(joules, 1/3.4)
	final := transient * 1.3

	exaggeration := clamp(1+(math.Log10(joules)-14)*0.25, 0.7, 4.8)

	// The mesh is floored at max(0.25% of the planet, 0.02 units) and capped
	// at 12% of the planet. On globes smaller than 1/6 unit the floor exceeds
	// the cap; the cap wins so the crater never outgrows the planet.
	radius := (final / 2) / MetersPerSceneUnit * exaggeration
	hi := planetRadiusUnits * 0.12
	lo := math.Min(math.Max(planetRadiusUnits*0.0025, 0.02), hi)

	return CraterEstimate{
		VelocityKmPerSec:        kmS,
		EnergyJoules:            joules,
		TransientDiameterMeters: transient,
		FinalDiameterMeters:     final,
		SceneRadiusUnits:        clamp(radius, lo, hi),
		ExaggerationFactor:      exaggeration,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
