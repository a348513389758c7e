package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/couchcryptid/impact-sim/internal/adapter/neo"
	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const feedDateLayout = "2006-01-02"

// neoResult is one analyzed object from the feed.
type neoResult struct {
	ID                     string                `json:"id"`
	Name                   string                `json:"name"`
	IsPotentiallyHazardous bool                  `json:"is_potentially_hazardous"`
	Analysis               domain.ImpactAnalysis `json:"analysis"`
}

func newNEOCmd() *cobra.Command {
	var (
		start, end  string
		lat, lng    float64
		apiKey      string
		baseURL     string
		concurrency int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "neo",
		Short: "Analyze every object in a NeoWs feed window as if it struck one site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := time.Parse(feedDateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			to := from
			if end != "" {
				if to, err = time.Parse(feedDateLayout, end); err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
			}

			logger := sharedobs.NewLogger("warn", "text")
			client := neo.NewClient(apiKey, baseURL, 30*time.Second, 1, observability.NewUnregisteredMetrics(), logger)

			objects, err := client.Feed(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			results, err := analyzeNEOs(objects, lat, lng, concurrency)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"ID", "NAME", "PHA", "ENERGY (kt)", "SEVERITY", "THREAT"},
				neoRows(results))
		},
	}

	f := cmd.Flags()
	f.StringVar(&start, "start", time.Now().UTC().Format(feedDateLayout), "first feed date (YYYY-MM-DD)")
	f.StringVar(&end, "end", "", "last feed date (YYYY-MM-DD), at most 7 days after --start")
	f.Float64Var(&lat, "lat", 0, "hypothetical impact latitude")
	f.Float64Var(&lng, "lng", 0, "hypothetical impact longitude")
	f.StringVar(&apiKey, "api-key", sharedcfg.EnvOrDefault("NEO_API_KEY", "DEMO_KEY"), "NASA API key")
	f.StringVar(&baseURL, "base-url", sharedcfg.EnvOrDefault("NEO_BASE_URL", "https://api.nasa.gov/neo/rest/v1"), "NeoWs base URL")
	f.IntVar(&concurrency, "concurrency", 4, "analyses to run in parallel")
	f.BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func neoRows(results []neoResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.ID,
			r.Name,
			strconv.FormatBool(r.IsPotentiallyHazardous),
			fmt.Sprintf("%.1f", r.Analysis.Energy.Kilotons),
			string(r.Analysis.Summary.Severity),
			r.Analysis.Summary.PrimaryThreat,
		})
	}
	return rows
}

// analyzeNEOs runs AnalyzeImpact for each object in parallel. Results keep
// the feed order.
func analyzeNEOs(objects []domain.NEO, lat, lng float64, concurrency int) ([]neoResult, error) {
	results := make([]neoResult, len(objects))

	var g errgroup.Group
	g.SetLimit(max(concurrency, 1))
	for i, obj := range objects {
		g.Go(func() error {
			a, err := domain.AnalyzeImpact(obj.ImpactParameters(lat, lng))
			if err != nil {
				return fmt.Errorf("neo %s: %w", obj.ID, err)
			}
			results[i] = neoResult{
				ID:                     obj.ID,
				Name:                   obj.Name,
				IsPotentiallyHazardous: obj.IsPotentiallyHazardous,
				Analysis:               a,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
