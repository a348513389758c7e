package domain

import "math"

// Damage radius multipliers applied to the cube root of yield in kilotons.
const (
	totalRadiusFactor    = 0.5 // >20 psi overpressure
	severeRadiusFactor   = 1.0 // 5–20 psi, structural collapse
	moderateRadiusFactor = 1.5 // 1–5 psi
	lightRadiusFactor    = 3.0 // broken windows, light injuries
	thermalRadiusFactor  = 2.5 // third-degree burns
	fireballRadiusFactor = 0.8
)

// DamageRadii are concentric damage zones in kilometers.
// Total < Severe < Moderate < Light for any positive energy; Thermal and
// Fireball are independent of that ordering.
type DamageRadii struct {
	Total    float64 `json:"total_km"`
	Severe   float64 `json:"severe_km"`
	Moderate float64 `json:"moderate_km"`
	Light    float64 `json:"light_km"`
	Thermal  float64 `json:"thermal_km"`
	Fireball float64 `json:"fireball_km"`
}

// ComputeDamageRadii scales every radius by cbrt(energy). Energy is clamped
// to ≥0 first, so zero or negative input yields all-zero radii.
func ComputeDamageRadii(energyKilotons float64) DamageRadii {
	c := math.Cbrt(clampEnergy(energyKilotons))
	return DamageRadii{
		Total:    c * totalRadiusFactor,
		Severe:   c * severeRadiusFactor,
		Moderate: c * moderateRadiusFactor,
		Light:    c * lightRadiusFactor,
		Thermal:  c * thermalRadiusFactor,
		Fireball: c * fireballRadiusFactor,
	}
}
