package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var (
		in           string
		planetRadius float64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Recompute every report in a JSON file and print mismatches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			var reports []domain.ImpactReport
			if err := json.Unmarshal(data, &reports); err != nil {
				return fmt.Errorf("decode %s: %w", in, err)
			}

			mismatches := verifyReports(reports, planetRadius, func(id, diff string) {
				fmt.Fprintf(cmd.OutOrStdout(), "MISMATCH %s (-want +got):\n%s\n", id, diff)
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%d reports checked, %d mismatched\n", len(reports), mismatches)
			if mismatches > 0 {
				return fmt.Errorf("%d of %d reports do not match a fresh analysis", mismatches, len(reports))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "JSON array of impact reports")
	cmd.Flags().Float64Var(&planetRadius, "planet-radius", 6.371, "globe radius the reports were produced with")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

// verifyReports re-runs AnalyzeImpact and the crater estimate for each
// report's scenario and calls onMismatch with a diff for every report whose
// analysis or crater differs.
func verifyReports(reports []domain.ImpactReport, planetRadius float64, onMismatch func(id, diff string)) int {
	opt := cmpopts.EquateApprox(0, 1e-9)
	mismatches := 0
	for _, r := range reports {
		want, err := domain.AnalyzeImpact(r.Scenario.Parameters())
		if err != nil {
			mismatches++
			onMismatch(r.ID, err.Error())
			continue
		}
		wantCrater, err := r.Scenario.Crater(planetRadius)
		if err != nil {
			mismatches++
			onMismatch(r.ID, err.Error())
			continue
		}

		diff := cmp.Diff(want, r.Analysis, opt) + cmp.Diff(wantCrater, r.Crater, opt)
		if diff != "" {
			mismatches++
			onMismatch(r.ID, diff)
		}
	}
	return mismatches
}
