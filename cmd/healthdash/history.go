package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"healthdash/internal/adapter/cli"
	"healthdash/internal/app"
)

func newHistoryCmd(e *env) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every saved record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := app.Order(order)
			if o != app.OrderDateDesc && o != app.OrderInserted {
				return fmt.Errorf("order must be %q or %q", app.OrderDateDesc, app.OrderInserted)
			}

			repo, closeStore, err := openStore(cmd.Context(), e.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			records, err := app.NewRecordService(repo, e.log).History(cmd.Context(), o)
			if err != nil {
				return err
			}
			return cli.RenderHistory(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&order, "order", string(app.OrderDateDesc), "desc (newest date first) or inserted (save order)")
	return cmd
}
