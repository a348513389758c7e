package domain

import (
	"strconv"
	"strings"
)

// Fallbacks for NEO records with missing estimates.
const (
	fallbackNEODiameterMinMeters = 50.0
	fallbackNEODiameterMaxMeters = 100.0
	fallbackNEOVelocityKmPerSec  = 20.0
)

// NEO is a near-Earth object as published by NASA's NeoWs API.
type NEO struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	IsPotentiallyHazardous bool              `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter      EstimatedDiameter `json:"estimated_diameter"`
	CloseApproachData      []CloseApproach   `json:"close_approach_data"`
}

// EstimatedDiameter carries NeoWs min/max estimates per unit.
type EstimatedDiameter struct {
	Meters     DiameterRange `json:"meters"`
	Kilometers DiameterRange `json:"kilometers"`
}

// DiameterRange is one min/max pair.
type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

// CloseApproach is one close-approach record. NeoWs encodes numbers as strings.
type CloseApproach struct {
	Date             string           `json:"close_approach_date"`
	RelativeVelocity RelativeVelocity `json:"relative_velocity"`
	MissDistance     MissDistance     `json:"miss_distance"`
}

type RelativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
}

type MissDistance struct {
	Astronomical string `json:"astronomical"`
	Kilometers   string `json:"kilometers"`
}

// DiameterMeters averages the min/max estimate, preferring the meter
// figures, then kilometers, then a 50–100 m default.
func (n NEO) DiameterMeters() float64 {
	if m := n.EstimatedDiameter.Meters; m.Min > 0 || m.Max > 0 {
		return averagePositive(m.Min, m.Max)
	}
	if km := n.EstimatedDiameter.Kilometers; km.Min > 0 || km.Max > 0 {
		return averagePositive(km.Min, km.Max) * 1000
	}
	return (fallbackNEODiameterMinMeters + fallbackNEODiameterMaxMeters) / 2
}

// VelocityKmPerSec uses the first close approach, converting from km/h
// when only that figure is published.
func (n NEO) VelocityKmPerSec() float64 {
	if len(n.CloseApproachData) == 0 {
		return fallbackNEOVelocityKmPerSec
	}
	rv := n.CloseApproachData[0].RelativeVelocity
	if v := parsePositive(rv.KilometersPerSecond); v > 0 {
		return v
	}
	if v := parsePositive(rv.KilometersPerHour); v > 0 {
		return v / 3600
	}
	return fallbackNEOVelocityKmPerSec
}

// ImpactParameters builds a hypothetical impact of this object at lat/lng.
func (n NEO) ImpactParameters(lat, lng float64) ImpactParameters {
	return ImpactParameters{
		DiameterMeters:   n.DiameterMeters(),
		VelocityKmPerSec: n.VelocityKmPerSec(),
		DensityKgPerM3:   DefaultDensityKgPerM3,
		Latitude:         lat,
		Longitude:        lng,
	}
}

func averagePositive(a, b float64) float64 {
	switch {
	case a > 0 && b > 0:
		return (a + b) / 2
	case a > 0:
		return a
	default:
		return b
	}
}

func parsePositive(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}
