// Package geojson renders damage radii as GeoJSON rings around ground zero.
package geojson

import (
	"math"

	"github.com/couchcryptid/impact-sim/internal/domain"
	gj "github.com/paulmach/go.geojson"
)

// EarthRadiusKm is the mean Earth radius used to project rings.
const EarthRadiusKm = 6371.0

// DefaultSegments is the number of vertices per ring.
const DefaultSegments = 64

// Zone names, emitted as the "zone" feature property.
const (
	ZoneTotal      = "total_destruction"
	ZoneSevere     = "severe_damage"
	ZoneModerate   = "moderate_damage"
	ZoneLight      = "light_damage"
	ZoneThermal    = "thermal_radiation"
	ZoneFireball   = "fireball"
	ZoneGroundZero = "ground_zero"
)

type zone struct {
	name     string
	radiusKm float64
}

// DamageZones builds a FeatureCollection with one polygon per non-zero
// radius, followed by a Point at ground zero. segments below 3 fall back
// to DefaultSegments.
func DamageZones(lat, lng float64, radii domain.DamageRadii, segments int) *gj.FeatureCollection {
	if segments < 3 {
		segments = DefaultSegments
	}

	fc := gj.NewFeatureCollection()
	for _, z := range []zone{
		{ZoneTotal, radii.Total},
		{ZoneSevere, radii.Severe},
		{ZoneModerate, radii.Moderate},
		{ZoneLight, radii.Light},
		{ZoneThermal, radii.Thermal},
		{ZoneFireball, radii.Fireball},
	} {
		if !(z.radiusKm > 0) || math.IsInf(z.radiusKm, 0) {
			continue
		}
		f := gj.NewPolygonFeature([][][]float64{ring(lat, lng, z.radiusKm, segments)})
		f.SetProperty("zone", z.name)
		f.SetProperty("radius_km", z.radiusKm)
		fc.AddFeature(f)
	}

	center := gj.NewPointFeature([]float64{lng, lat})
	center.SetProperty("zone", ZoneGroundZero)
	fc.AddFeature(center)
	return fc
}

// AnalysisZones renders the rings of a completed analysis and attaches the
// headline figures to the ground-zero point.
func AnalysisZones(p domain.ImpactParameters, a domain.ImpactAnalysis) *gj.FeatureCollection {
	fc := DamageZones(p.Latitude, p.Longitude, a.Radii, DefaultSegments)
	center := fc.Features[len(fc.Features)-1]
	center.SetProperty("energy_kt", a.Energy.Kilotons)
	center.SetProperty("impact_type", string(a.ImpactType))
	center.SetProperty("severity", string(a.Summary.Severity))
	center.SetProperty("primary_threat", a.Summary.PrimaryThreat)
	return fc
}

// ring returns a closed [lng, lat] ring of points radiusKm from the center.
func ring(lat, lng, radiusKm float64, segments int) [][]float64 {
	pts := make([][]float64, 0, segments+1)
	for i := range segments {
		bearing := 2 * math.Pi * float64(i) / float64(segments)
		pLat, pLng := destination(lat, lng, radiusKm, bearing)
		pts = append(pts, []float64{pLng, pLat})
	}
	return append(pts, pts[0])
}

// destination is the great-circle point at distance km along bearing
// (radians clockwise from north).
func destination(lat, lng, km, bearing float64) (float64, float64) {
	latR := lat * math.Pi / 180
	lngR := lng * math.Pi / 180
	d := km / EarthRadiusKm

	outLat := math.Asin(math.Sin(latR)*math.Cos(d) + math.Cos(latR)*math.Sin(d)*math.Cos(bearing))
	outLng := lngR + math.Atan2(math.Sin(bearing)*math.Sin(d)*math.Cos(latR),
		math.Cos(d)-math.Sin(latR)*math.Sin(outLat))

	return outLat * 180 / math.Pi, normalizeLng(outLng * 180 / math.Pi)
}

func normalizeLng(lng float64) float64 {
	lng = math.Mod(lng+540, 360) - 180
	if lng == -180 {
		return 180
	}
	return lng
}
