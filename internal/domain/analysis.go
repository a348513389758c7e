package domain

// Analysis sources.
const (
	SourceLocal   = "local"
	SourceBackend = "backend"
)

// Primary threat labels.
const (
	ThreatTsunami       = "Tsunami"
	ThreatGlobalClimate = "Global Climate Change"
	ThreatRegional      = "Regional Devastation"
	ThreatLocal         = "Local Destruction"
	ThreatBlast         = "Blast Wave and Thermal Radiation"
)

// Summary is the headline of an analysis.
type Summary struct {
	Severity      Severity `json:"severity"`
	PrimaryThreat string   `json:"primary_threat"`
}

// ImpactAnalysis is the aggregate consumed by presentation code. Both local
// computation and the remote backend adapter produce this type.
type ImpactAnalysis struct {
	Source       string               `json:"source"`
	Energy       EnergyResult         `json:"energy"`
	Radii        DamageRadii          `json:"radii"`
	ImpactType   ImpactType           `json:"impact_type"`
	Consequences ConsequenceSet       `json:"consequences"`
	Historical   HistoricalComparison `json:"historical"`
	Summary      Summary              `json:"summary"`
}

// AnalyzeImpact runs the full estimator chain. A zero density defaults to
// DefaultDensityKgPerM3; any other invalid input yields ErrInvalidParameter
// and no partial result.
func AnalyzeImpact(p ImpactParameters) (ImpactAnalysis, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return ImpactAnalysis{}, err
	}

	energy, err := ComputeEnergy(p.DiameterMeters, p.VelocityKmPerSec, p.DensityKgPerM3)
	if err != nil {
		return ImpactAnalysis{}, err
	}
	kt := energy.Kilotons

	radii := ComputeDamageRadii(kt)
	impactType := ClassifyImpact(p.Latitude, p.Longitude)
	historical := CompareWithHistory(kt)

	return ImpactAnalysis{
		Source:     SourceLocal,
		Energy:     energy,
		Radii:      radii,
		ImpactType: impactType,
		Consequences: ConsequenceSet{
			Tsunami:     EstimateTsunamiRisk(kt, impactType.IsOcean()),
			Seismic:     EstimateSeismicActivity(kt),
			Atmospheric: EstimateAtmosphericEffect(kt, p.DiameterMeters),
			Population:  EstimatePopulationAtRisk(radii, p.Latitude, p.Longitude),
			Fire:        EstimateFireRisk(kt, radii.Fireball),
		},
		Historical: historical,
		Summary: Summary{
			Severity:      historical.SeverityLabel,
			PrimaryThreat: primaryThreat(impactType, kt),
		},
	}, nil
}

func primaryThreat(t ImpactType, kt float64) string {
	switch {
	case t.IsOcean():
		return ThreatTsunami
	case kt > 10000:
		return ThreatGlobalClimate
	case kt > 1000:
		return ThreatRegional
	default:
		return ThreatLocal
	}
}
