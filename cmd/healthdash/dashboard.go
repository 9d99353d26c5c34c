package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthdash/internal/adapter/cli"
	"healthdash/internal/app"
)

func newDashboardCmd(e *env) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the latest score, recommendation and water target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeStore, err := openStore(cmd.Context(), e.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			d, err := app.NewDashboardService(repo).Get(cmd.Context(), unit)
			if err != nil {
				return err
			}
			if err := cli.RenderDashboard(cmd.OutOrStdout(), d); err != nil {
				return err
			}
			if d.Empty {
				return nil
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n  %-14s %d saved, weight in %s\n", "History", len(d.Trend), unit)
			return err
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "kg", "weight unit for the trend: kg or lb")
	return cmd
}
