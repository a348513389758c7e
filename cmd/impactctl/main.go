// Command impactctl runs impact analyses from the command line and maintains
// the mock scenario fixtures used by the pipeline tests.
//
// Usage:
//
//	impactctl analyze --diameter 20 --velocity 19 --lat 54.8 --lng 61.1
//	impactctl analyze --file data/mock/impact_scenarios.json > reports.json
//	impactctl verify --in reports.json
//	impactctl neo --start 2026-10-01 --end 2026-10-07
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "impactctl",
		Short:         "Estimate asteroid impact effects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAnalyzeCmd(),
		newCraterCmd(),
		newHistoryCmd(),
		newNEOCmd(),
		newGenmockCmd(),
		newVerifyCmd(),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
