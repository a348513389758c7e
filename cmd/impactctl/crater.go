package main

import (
	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/spf13/cobra"
)

func newCraterCmd() *cobra.Command {
	var mass, sceneVelocity, planetRadius float64

	cmd := &cobra.Command{
		Use:   "crater",
		Short: "Size the crater mesh for an impactor mass and scene speed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := domain.EstimateCrater(mass, sceneVelocity, planetRadius)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), c)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&mass, "mass", 0, "impactor mass in kg")
	f.Float64Var(&sceneVelocity, "scene-velocity", 1, "scene speed, 0.2 to 2.0")
	f.Float64Var(&planetRadius, "planet-radius", 6.371, "globe radius in scene units")
	_ = cmd.MarkFlagRequired("mass")

	return cmd
}
