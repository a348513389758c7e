package domain

import (
	"fmt"
	"math"
)

// RiskLevel labels the output of a single consequence estimator.
type RiskLevel string

const (
	RiskMinimal        RiskLevel = "MINIMAL"
	RiskLow            RiskLevel = "LOW"
	RiskModerate       RiskLevel = "MODERATE"
	RiskHigh           RiskLevel = "HIGH"
	RiskVeryHigh       RiskLevel = "VERY_HIGH"
	RiskCatastrophic   RiskLevel = "CATASTROPHIC"
	RiskNuclearWinter  RiskLevel = "NUCLEAR_WINTER"
	RiskMassExtinction RiskLevel = "MASS_EXTINCTION"
)

// ConsequenceSet groups the five independent estimator outputs.
type ConsequenceSet struct {
	Tsunami     TsunamiRisk        `json:"tsunami"`
	Seismic     SeismicActivity    `json:"seismic"`
	Atmospheric AtmosphericEffect  `json:"atmospheric"`
	Population  PopulationEstimate `json:"population"`
	Fire        FireRisk           `json:"fire"`
}

// TsunamiRisk estimates wave height and affected coastline for ocean strikes.
type TsunamiRisk struct {
	RiskLevel           RiskLevel `json:"risk_level"`
	WaveHeightMeters    float64   `json:"wave_height_m"`
	AffectedCoastlineKm float64   `json:"affected_coastline_km"`
	Description         string    `json:"description"`
}

// EstimateTsunamiRisk returns LOW with zero magnitudes for land impacts.
// Ocean impacts use wave height (E/100)^0.4·10 m and coastline √E·5 km.
func EstimateTsunamiRisk(energyKilotons float64, isOcean bool) TsunamiRisk {
	if !isOcean {
		return TsunamiRisk{
			RiskLevel:   RiskLow,
			Description: "land impact, no tsunami expected",
		}
	}

	e := clampEnergy(energyKilotons)
	wave := math.Pow(e/100, 0.4) * 10
	coast := math.Sqrt(e) * 5

	risk := RiskLow
	switch {
	case e > 10000:
		risk = RiskCatastrophic
	case e > 1000:
		risk = RiskVeryHigh
	case e > 100:
		risk = RiskHigh
	case e > 10:
		risk = RiskModerate
	}

	return TsunamiRisk{
		RiskLevel:           risk,
		WaveHeightMeters:    wave,
		AffectedCoastlineKm: coast,
		Description:         fmt.Sprintf("waves of ~%.0fm reaching %.0fkm of coastline", wave, coast),
	}
}

// SeismicActivity is the Richter-equivalent magnitude of the impact.
type SeismicActivity struct {
	Magnitude             float64 `json:"magnitude"`
	Description           string  `json:"description"`
	FeltRadiusKm          float64 `json:"felt_radius_km"`
	FeltRadiusDescription string  `json:"felt_radius_description"`
}

// EstimateSeismicActivity converts yield to magnitude with
// log10(E_kgTNT) ≈ 1.5·M + 4.8, clamped to M ≥ 0.
func EstimateSeismicActivity(energyKilotons float64) SeismicActivity {
	e := clampEnergy(energyKilotons)
	m := (math.Log10(e*1e6) - 4.8) / 1.5
	m = math.Max(0, finiteOrZero(m))

	var desc string
	switch {
	case m >= 9:
		desc = "mega-quake, continental devastation"
	case m >= 8:
		desc = "great earthquake, regional destruction"
	case m >= 7:
		desc = "major earthquake, extensive damage"
	case m >= 6:
		desc = "strong earthquake, structural damage"
	case m >= 5:
		desc = "moderate earthquake, minor damage"
	default:
		desc = "light seismic activity"
	}

	s := SeismicActivity{
		Magnitude:             m,
		Description:           desc,
		FeltRadiusDescription: "local effects only",
	}
	if m > 4 {
		s.FeltRadiusKm = math.Pow(10, m-3)
		s.FeltRadiusDescription = fmt.Sprintf("felt up to %.0f km", s.FeltRadiusKm)
	}
	return s
}

// AtmosphericEffect describes dust loading and climate impact.
type AtmosphericEffect struct {
	RiskLevel      RiskLevel `json:"risk_level"`
	Description    string    `json:"description"`
	DustTons       float64   `json:"dust_tons"`
	CoolingYears   float64   `json:"cooling_years"`
	OzoneDepletion bool      `json:"ozone_depletion"`
}

// EstimateAtmosphericEffect tiers on yield. Dust scales with the impactor
// diameter times a tier multiplier (10 … 1e6).
func EstimateAtmosphericEffect(energyKilotons, diameterMeters float64) AtmosphericEffect {
	e := clampEnergy(energyKilotons)
	d := math.Max(0, finiteOrZero(diameterMeters))

	a := AtmosphericEffect{
		RiskLevel:      RiskMinimal,
		Description:    "no significant atmospheric effects",
		DustTons:       d * 10,
		OzoneDepletion: e > 50000,
	}

	switch {
	case e > 1e8:
		a.RiskLevel = RiskMassExtinction
		a.Description = "impact winter, global darkness for decades"
		a.CoolingYears = 10
		a.DustTons = d * 1e6
	case e > 1e6:
		a.RiskLevel = RiskNuclearWinter
		a.Description = "severe global cooling lasting years"
		a.CoolingYears = 5
		a.DustTons = d * 1e5
	case e > 1e5:
		a.RiskLevel = RiskHigh
		a.Description = "global dust cloud, temporary cooling"
		a.CoolingYears = 2
		a.DustTons = d * 1e4
	case e > 1e4:
		a.RiskLevel = RiskModerate
		a.Description = "regional dust cloud, local climate effects"
		a.CoolingYears = 0.5
		a.DustTons = d * 1e3
	}
	return a
}

// FireRisk flags mass fires and firestorms.
type FireRisk struct {
	RiskLevel   RiskLevel `json:"risk_level"`
	RadiusKm    float64   `json:"radius_km"`
	Description string    `json:"description"`
	Firestorm   bool      `json:"firestorm"`
}

// EstimateFireRisk is HIGH above 100 kt; a firestorm forms above 1000 kt.
func EstimateFireRisk(energyKilotons, fireballRadiusKm float64) FireRisk {
	e := clampEnergy(energyKilotons)
	r := math.Max(0, finiteOrZero(fireballRadiusKm))

	f := FireRisk{
		RiskLevel:   RiskLow,
		RadiusKm:    r,
		Description: "minimal risk of widespread fires",
		Firestorm:   e > 1000,
	}
	if e > 100 {
		f.RiskLevel = RiskHigh
		f.Description = fmt.Sprintf("mass fires within a %.1f km radius", r)
	}
	return f
}

// basePopulationDensity is the world average in people per km².
const basePopulationDensity = 60.0

// PopulationEstimate counts people inside the damage zones.
type PopulationEstimate struct {
	DensityPerKm2      float64 `json:"density_per_km2"`
	TotalAtRisk        float64 `json:"total_at_risk"`
	SevereZone         float64 `json:"severe_zone"`
	CriticalZone       float64 `json:"critical_zone"`
	EvacuationRadiusKm float64 `json:"evacuation_radius_km"`
}

// PopulationDensity returns the heuristic density at a coordinate. The
// multipliers compound: ×2 for |lat| < 40, ×2 for 0 < lng < 150, ×1.5 for
// -100 < lng < -30.
func PopulationDensity(lat, lng float64) float64 {
	factor := 1.0
	if math.Abs(lat) < 40 {
		factor *= 2
	}
	if lng > 0 && lng < 150 {
		factor *= 2
	}
	if lng > -100 && lng < -30 {
		factor *= 1.5
	}
	return basePopulationDensity * factor
}

// EstimatePopulationAtRisk multiplies zone areas (π·r²) by the density
// heuristic. TotalAtRisk uses the moderate radius, SevereZone the severe
// radius and CriticalZone the total-destruction radius.
func EstimatePopulationAtRisk(radii DamageRadii, lat, lng float64) PopulationEstimate {
	density := PopulationDensity(lat, lng)
	area := func(r float64) float64 { return math.Pi * r * r }

	return PopulationEstimate{
		DensityPerKm2:      density,
		TotalAtRisk:        area(radii.Moderate) * density,
		SevereZone:         area(radii.Severe) * density,
		CriticalZone:       area(radii.Total) * density,
		EvacuationRadiusKm: radii.Light,
	}
}
