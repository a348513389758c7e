package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileScenario is one entry of an --file batch. YAML and JSON share keys.
type fileScenario struct {
	ID               string  `yaml:"id" json:"id"`
	DiameterMeters   float64 `yaml:"diameter_m" json:"diameter_m"`
	VelocityKmPerSec float64 `yaml:"velocity_km_s" json:"velocity_km_s"`
	DensityKgPerM3   float64 `yaml:"density" json:"density"`
	Latitude         float64 `yaml:"lat" json:"lat"`
	Longitude        float64 `yaml:"lng" json:"lng"`
	MassKg           float64 `yaml:"mass_kg" json:"mass_kg"`
	SceneVelocity    float64 `yaml:"scene_velocity" json:"scene_velocity"`
}

func (f fileScenario) scenario() domain.Scenario {
	return domain.Scenario{
		ID:               f.ID,
		DiameterMeters:   f.DiameterMeters,
		VelocityKmPerSec: f.VelocityKmPerSec,
		DensityKgPerM3:   f.DensityKgPerM3,
		Latitude:         f.Latitude,
		Longitude:        f.Longitude,
		MassKg:           f.MassKg,
		SceneVelocity:    f.SceneVelocity,
	}
}

func newAnalyzeCmd() *cobra.Command {
	var (
		p            domain.ImpactParameters
		file         string
		planetRadius float64
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one impact from flags, or a batch of scenarios from --file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file != "" {
				scenarios, err := readScenarioFile(file)
				if err != nil {
					return err
				}
				reports := make([]domain.ImpactReport, 0, len(scenarios))
				for _, s := range scenarios {
					r, err := domain.BuildReport(s, planetRadius)
					if err != nil {
						return fmt.Errorf("scenario %q: %w", s.ID, err)
					}
					reports = append(reports, r)
				}
				return writeJSON(cmd.OutOrStdout(), reports)
			}

			analysis, err := domain.AnalyzeImpact(p)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), analysis)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.DiameterMeters, "diameter", 0, "impactor diameter in meters")
	f.Float64Var(&p.VelocityKmPerSec, "velocity", 0, "impact velocity in km/s")
	f.Float64Var(&p.DensityKgPerM3, "density", 0, "impactor density in kg/m³ (default 2500)")
	f.Float64Var(&p.Latitude, "lat", 0, "impact latitude")
	f.Float64Var(&p.Longitude, "lng", 0, "impact longitude")
	f.StringVar(&file, "file", "", "YAML or JSON list of scenarios; prints one report per scenario")
	f.Float64Var(&planetRadius, "planet-radius", 6.371, "globe radius in scene units for crater sizing")
	cmd.MarkFlagsMutuallyExclusive("file", "diameter")

	return cmd
}

// readScenarioFile decodes a list of scenarios. Files ending in .json are
// decoded as JSON, everything else as YAML.
func readScenarioFile(path string) ([]domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	var entries []fileScenario
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &entries)
	} else {
		err = yaml.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	out := make([]domain.Scenario, len(entries))
	for i, e := range entries {
		out[i] = e.scenario()
	}
	return out, nil
}
