package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
)

// ScenarioTransformer implements Transformer by running the local impact
// analysis over each scenario message.
type ScenarioTransformer struct {
	planetRadiusUnits float64
	logger            *slog.Logger
	metrics           *observability.Metrics
}

// NewTransformer creates a ScenarioTransformer. planetRadiusUnits sizes
// crater estimates for scenarios that carry mass and scene velocity.
func NewTransformer(planetRadiusUnits float64, logger *slog.Logger, metrics *observability.Metrics) *ScenarioTransformer {
	return &ScenarioTransformer{
		planetRadiusUnits: planetRadiusUnits,
		logger:            logger,
		metrics:           metrics,
	}
}

func (t *ScenarioTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	scenario, err := domain.ParseScenario(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	report, err := domain.BuildReport(scenario, t.planetRadiusUnits)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	if t.metrics != nil {
		t.metrics.ImpactEnergy.Observe(report.Analysis.Energy.Kilotons)
	}
	t.logger.Debug("scenario analyzed",
		"scenario_id", report.ID,
		"energy_kt", report.Analysis.Energy.Kilotons,
		"impact_type", report.Analysis.ImpactType,
		"severity", report.Analysis.Summary.Severity,
	)

	return domain.SerializeReport(report)
}
