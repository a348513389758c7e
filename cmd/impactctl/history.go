package main

import (
	"fmt"

	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the reference historical impacts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events := domain.HistoricalEvents()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), events)
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					e.Name,
					e.Era,
					fmt.Sprintf("%.0f", e.DiameterMeters),
					fmt.Sprintf("%.0f", e.EnergyKilotons),
					e.LocationName,
				})
			}
			return renderTable(cmd.OutOrStdout(), []string{"NAME", "ERA", "DIAMETER (m)", "ENERGY (kt)", "LOCATION"}, rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
