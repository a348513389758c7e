package domain

// Backend severity scale, distinct from CompareWithHistory's.
const (
	SeverityMassExtinction Severity = "MASS_EXTINCTION"
	SeverityLow            Severity = "LOW"
	SeverityMinimal        Severity = "MINIMAL"
	SeverityUnknown        Severity = "UNKNOWN"
)

const unavailable = "not provided by the simulation backend"

// BackendResult mirrors the simulation backend's /api/impact/simulate reply.
// Every block is optional.
type BackendResult struct {
	ImpactEffects  BackendEffects   `json:"impact_effects"`
	ImpactLocation *BackendLocation `json:"impact_location,omitempty"`
	TargetType     string           `json:"target_type,omitempty"`
}

type BackendEffects struct {
	Energy *BackendEnergy `json:"energy,omitempty"`
	Radii  *BackendRadii  `json:"radii,omitempty"`
	Crater *BackendCrater `json:"crater,omitempty"`
}

type BackendEnergy struct {
	Kilotons float64 `json:"kilotons"`
	Megatons float64 `json:"megatons"`
}

type BackendRadii struct {
	Total    float64 `json:"total"`
	Severe   float64 `json:"severe"`
	Moderate float64 `json:"moderate"`
	Light    float64 `json:"light"`
}

type BackendCrater struct {
	FinalDiameterKm float64 `json:"final_diameter_km"`
}

type BackendLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BackendRequest is the body posted to /api/impact/simulate.
type BackendRequest struct {
	DiameterMeters   float64         `json:"diameter_m"`
	VelocityKmPerSec float64         `json:"velocity_km_s"`
	ImpactLocation   BackendLocation `json:"impact_location"`
	TargetType       string          `json:"target_type"`
	Density          float64         `json:"density,omitempty"`
}

// NewBackendRequest maps local parameters onto the backend request shape.
func NewBackendRequest(p ImpactParameters) BackendRequest {
	p = p.WithDefaults()
	return BackendRequest{
		DiameterMeters:   p.DiameterMeters,
		VelocityKmPerSec: p.VelocityKmPerSec,
		ImpactLocation:   BackendLocation{Lat: p.Latitude, Lon: p.Longitude},
		TargetType:       ClassifyImpact(p.Latitude, p.Longitude).TargetType(),
		Density:          p.DensityKgPerM3,
	}
}

// FromBackendResult converts a backend reply into an ImpactAnalysis. Blocks
// the backend does not compute are filled with explicit "unavailable"
// values rather than local estimates.
func FromBackendResult(r BackendResult) ImpactAnalysis {
	var kt float64
	hasEnergy := false
	if e := r.ImpactEffects.Energy; e != nil {
		kt = e.Kilotons
		if kt == 0 && e.Megatons > 0 {
			kt = e.Megatons * 1000
		}
		hasEnergy = kt > 0
	}

	var radii DamageRadii
	if br := r.ImpactEffects.Radii; br != nil {
		radii = DamageRadii{Total: br.Total, Severe: br.Severe, Moderate: br.Moderate, Light: br.Light}
	}

	impactType := ImpactLand
	switch {
	case r.TargetType == "water":
		impactType = ImpactOcean
	case r.TargetType == "land":
	case r.ImpactLocation != nil:
		impactType = ClassifyImpact(r.ImpactLocation.Lat, r.ImpactLocation.Lon)
	}

	severity := SeverityUnknown
	if hasEnergy {
		severity = backendSeverity(kt)
	}

	return ImpactAnalysis{
		Source:     SourceBackend,
		Energy:     ConvertEnergy(kt),
		Radii:      radii,
		ImpactType: impactType,
		Consequences: ConsequenceSet{
			Tsunami:     TsunamiRisk{RiskLevel: RiskLow, Description: "tsunami analysis " + unavailable},
			Seismic:     SeismicActivity{Description: "seismic data " + unavailable, FeltRadiusDescription: unavailable},
			Atmospheric: AtmosphericEffect{RiskLevel: RiskLow, Description: "atmospheric analysis " + unavailable},
			Population:  PopulationEstimate{EvacuationRadiusKm: radii.Total},
			Fire:        FireRisk{RiskLevel: RiskLow, Description: "fire analysis " + unavailable},
		},
		Historical: HistoricalComparison{
			Event:          HistoricalEvent{Name: "N/A", CasualtiesDescription: unavailable},
			ComparisonText: "historical comparison " + unavailable,
			SeverityLabel:  severity,
		},
		Summary: Summary{
			Severity:      severity,
			PrimaryThreat: ThreatBlast,
		},
	}
}

func backendSeverity(kt float64) Severity {
	switch {
	case kt >= 1e5:
		return SeverityMassExtinction
	case kt >= 1e4:
		return SeverityCatastrophic
	case kt >= 1e3:
		return SeveritySevere
	case kt >= 100:
		return SeverityModerate
	case kt >= 10:
		return SeverityLow
	default:
		return SeverityMinimal
	}
}
