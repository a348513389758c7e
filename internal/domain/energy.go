package domain

import "math"

const (
	// JoulesPerKiloton is the TNT-equivalent conversion factor.
	JoulesPerKiloton = 4.184e12

	// HiroshimaKilotons is the approximate yield of the Hiroshima bomb.
	HiroshimaKilotons = 15.0
)

// EnergyResult fans a single kiloton value out into display units.
// Construct it with ConvertEnergy so the units stay consistent.
type EnergyResult struct {
	Kilotons             float64 `json:"kilotons"`
	Megatons             float64 `json:"megatons"`
	Joules               float64 `json:"joules"`
	Terajoules           float64 `json:"terajoules"`
	HiroshimasEquivalent float64 `json:"hiroshimas_equivalent"`
}

// ComputeEnergy returns the kinetic energy of a spherical body of the given
// diameter (m), velocity (km/s) and density (kg/m³).
func ComputeEnergy(diameterMeters, velocityKmPerSec, densityKgPerM3 float64) (EnergyResult, error) {
	if err := requirePositive("diameter_m", diameterMeters); err != nil {
		return EnergyResult{}, err
	}
	if err := requirePositive("velocity_km_s", velocityKmPerSec); err != nil {
		return EnergyResult{}, err
	}
	if err := requirePositive("density", densityKgPerM3); err != nil {
		return EnergyResult{}, err
	}

	radius := diameterMeters / 2
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	mass := volume * densityKgPerM3
	joules := kineticEnergyJoules(mass, velocityKmPerSec)

	if math.IsInf(joules, 0) || math.IsNaN(joules) {
		return EnergyResult{}, &ParameterError{Field: "diameter_m", Value: diameterMeters, Reason: "energy overflows float64"}
	}
	return ConvertEnergy(joules / JoulesPerKiloton), nil
}

// ConvertEnergy derives every unit from kilotons. Negative or non-finite
// input is treated as zero.
func ConvertEnergy(kilotons float64) EnergyResult {
	kt := clampEnergy(kilotons)
	joules := kt * JoulesPerKiloton
	return EnergyResult{
		Kilotons:             kt,
		Megatons:             kt / 1000,
		Joules:               joules,
		Terajoules:           joules / 1e12,
		HiroshimasEquivalent: kt / HiroshimaKilotons,
	}
}

// kineticEnergyJoules is E = ½·m·v² with v converted from km/s to m/s.
func kineticEnergyJoules(massKg, velocityKmPerSec float64) float64 {
	v := velocityKmPerSec * 1000
	return 0.5 * massKg * v * v
}
