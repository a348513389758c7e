package domain

import (
	"fmt"
	"math"
)

// Severity is the overall label attached to an analysis.
type Severity string

const (
	SeverityLight        Severity = "LIGHT"
	SeverityModerate     Severity = "MODERATE"
	SeveritySevere       Severity = "SEVERE"
	SeverityCatastrophic Severity = "CATASTROPHIC"
)

// HistoricalEvent is a reference impact used for comparison.
type HistoricalEvent struct {
	Name                  string  `json:"name"`
	Era                   string  `json:"era"`
	DiameterMeters        float64 `json:"diameter_m"`
	VelocityKmPerSec      float64 `json:"velocity_km_s"`
	EnergyKilotons        float64 `json:"energy_kt"`
	LocationName          string  `json:"location"`
	CasualtiesDescription string  `json:"casualties"`
	Description           string  `json:"description"`
	Latitude              float64 `json:"lat"`
	Longitude             float64 `json:"lng"`
}

var historicalEvents = [...]HistoricalEvent{
	{
		Name:                  "Chelyabinsk",
		Era:                   "2013",
		DiameterMeters:        20,
		VelocityKmPerSec:      19,
		EnergyKilotons:        500,
		LocationName:          "Russia",
		CasualtiesDescription: "1,500+ injured",
		Description:           "Airburst over the southern Urals that shattered windows across the region",
		Latitude:              54.8,
		Longitude:             61.1,
	},
	{
		Name:                  "Tunguska",
		Era:                   "1908",
		DiameterMeters:        60,
		VelocityKmPerSec:      15,
		EnergyKilotons:        15000,
		LocationName:          "Siberia, Russia",
		CasualtiesDescription: "2,000 km² of forest flattened",
		Description:           "Airburst that felled about 80 million trees",
		Latitude:              60.9,
		Longitude:             101.9,
	},
	{
		Name:                  "Chicxulub",
		Era:                   "66 million years ago",
		DiameterMeters:        10000,
		VelocityKmPerSec:      20,
		EnergyKilotons:        1e8,
		LocationName:          "Yucatán Peninsula, Mexico",
		CasualtiesDescription: "Mass extinction (~75% of species)",
		Description:           "Impact that ended the age of the dinosaurs",
		Latitude:              21.4,
		Longitude:             -89.5,
	},
	{
		Name:                  "Barringer Crater",
		Era:                   "50,000 years ago",
		DiameterMeters:        50,
		VelocityKmPerSec:      12.8,
		EnergyKilotons:        2500,
		LocationName:          "Arizona, USA",
		CasualtiesDescription: "1.2 km wide crater",
		Description:           "One of the best preserved impact craters on Earth",
		Latitude:              35.0,
		Longitude:             -111.0,
	},
}

// HistoricalEvents returns a copy of the reference table.
func HistoricalEvents() []HistoricalEvent {
	out := make([]HistoricalEvent, len(historicalEvents))
	copy(out, historicalEvents[:])
	return out
}

// HistoricalComparison relates a yield to its nearest reference event.
type HistoricalComparison struct {
	Event          HistoricalEvent `json:"event"`
	Ratio          float64         `json:"ratio"`
	ComparisonText string          `json:"comparison_text"`
	SeverityLabel  Severity        `json:"severity_label"`
}

// CompareWithHistory picks the event closest in log10(energy) and labels the
// yield on its own severity scale (>15000 kt catastrophic, >500 severe,
// >50 moderate, else light).
func CompareWithHistory(energyKilotons float64) HistoricalComparison {
	e := clampEnergy(energyKilotons)
	logE := math.Log10(e)

	closest := historicalEvents[0]
	minDiff := math.Abs(logE - math.Log10(closest.EnergyKilotons))
	for _, ev := range historicalEvents[1:] {
		if d := math.Abs(logE - math.Log10(ev.EnergyKilotons)); d < minDiff {
			minDiff = d
			closest = ev
		}
	}

	ratio := e / closest.EnergyKilotons

	var text string
	switch {
	case ratio > 2:
		text = fmt.Sprintf("%.1f× more powerful than %s", ratio, closest.Name)
	case ratio > 0.5:
		text = "similar to " + closest.Name
	case ratio == 0:
		text = "negligible next to " + closest.Name
	default:
		text = fmt.Sprintf("%.1f× smaller than %s", 1/ratio, closest.Name)
	}

	return HistoricalComparison{
		Event:          closest,
		Ratio:          ratio,
		ComparisonText: text,
		SeverityLabel:  severityFor(e),
	}
}

func severityFor(kt float64) Severity {
	switch {
	case kt > 15000:
		return SeverityCatastrophic
	case kt > 500:
		return SeveritySevere
	case kt > 50:
		return SeverityModerate
	default:
		return SeverityLight
	}
}
