package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/spf13/cobra"
)

// sweepSite is a fixed location the diameter sweep is repeated at.
type sweepSite struct {
	name     string
	lat, lng float64
}

var (
	sweepSites = []sweepSite{
		{name: "pacific", lat: 0, lng: -150},
		{name: "atlantic", lat: 30, lng: -40},
		{name: "indian", lat: -20, lng: 80},
		{name: "mongolia", lat: 47.9, lng: 106.9},
	}
	sweepDiameters = []float64{10, 50, 140, 500, 1000}
)

const sweepVelocityKmPerSec = 20

func newGenmockCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "genmock",
		Short: "Write the deterministic scenario fixture used by the pipeline tests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenarios := mockScenarios()
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := writeJSON(f, scenarios); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d scenarios to %s\n", len(scenarios), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "data/mock/impact_scenarios.json", "output path")

	return cmd
}

// mockScenarios returns the historical events followed by a diameter sweep
// at each site.
func mockScenarios() []domain.Scenario {
	events := domain.HistoricalEvents()
	out := make([]domain.Scenario, 0, len(events)+len(sweepSites)*len(sweepDiameters))

	for _, e := range events {
		out = append(out, domain.Scenario{
			ID:               "hist-" + strings.ReplaceAll(strings.ToLower(e.Name), " ", "-"),
			DiameterMeters:   e.DiameterMeters,
			VelocityKmPerSec: e.VelocityKmPerSec,
			Latitude:         e.Latitude,
			Longitude:        e.Longitude,
		})
	}

	for _, site := range sweepSites {
		for _, d := range sweepDiameters {
			out = append(out, domain.Scenario{
				ID:               fmt.Sprintf("sweep-%s-%.0fm", site.name, d),
				DiameterMeters:   d,
				VelocityKmPerSec: sweepVelocityKmPerSec,
				Latitude:         site.lat,
				Longitude:        site.lng,
			})
		}
	}
	return out
}
