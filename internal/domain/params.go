package domain

// DefaultDensityKgPerM3 is the bulk density assumed for a stony asteroid.
const DefaultDensityKgPerM3 = 2500.0

// ImpactParameters describes one impact scenario.
type ImpactParameters struct {
	DiameterMeters   float64 `json:"diameter_m"`
	VelocityKmPerSec float64 `json:"velocity_km_s"`
	DensityKgPerM3   float64 `json:"density"`
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
}

// WithDefaults fills an unset (zero) density with DefaultDensityKgPerM3.
// Negative densities are left alone so Validate can reject them.
func (p ImpactParameters) WithDefaults() ImpactParameters {
	if p.DensityKgPerM3 == 0 {
		p.DensityKgPerM3 = DefaultDensityKgPerM3
	}
	return p
}

// Validate checks every field and returns the first violation.
func (p ImpactParameters) Validate() error {
	if err := requirePositive("diameter_m", p.DiameterMeters); err != nil {
		return err
	}
	if err := requirePositive("velocity_km_s", p.VelocityKmPerSec); err != nil {
		return err
	}
	if err := requirePositive("density", p.DensityKgPerM3); err != nil {
		return err
	}
	if err := requireRange("lat", p.Latitude, -90, 90); err != nil {
		return err
	}
	return requireRange("lng", p.Longitude, -180, 180)
}
