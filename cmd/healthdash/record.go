package main

import (
	"github.com/spf13/cobra"

	"healthdash/internal/adapter/cli"
	"healthdash/internal/app"
	"healthdash/internal/domain"
)

func newRecordCmd(e *env) *cobra.Command {
	var (
		gender string
		raw    domain.RawInput
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Compute today's metrics and append them to the store",
		Example: `  healthdash record --gender male --age 30 --height 175 --weight 70 \
    --glucose 95 --systolic 115 --diastolic 75 --steps 5000 --water 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := domain.ParseGender(gender)
			if err != nil {
				return err
			}
			raw.Gender = g

			repo, closeStore, err := openStore(cmd.Context(), e.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			svc := app.NewRecordService(repo, e.log)
			if dryRun {
				m, err := svc.Preview(raw)
				if err != nil {
					return err
				}
				preview := domain.NewRecord("(preview)", raw, m)
				return cli.RenderMetrics(cmd.OutOrStdout(), &preview)
			}

			rec, err := svc.Record(cmd.Context(), raw)
			if err != nil {
				return err
			}
			return cli.RenderMetrics(cmd.OutOrStdout(), rec)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gender, "gender", "male", "male or female")
	f.IntVar(&raw.Age, "age", 30, "age in years (1-120)")
	f.Float64Var(&raw.HeightCm, "height", 0, "height in cm")
	f.Float64Var(&raw.WeightKg, "weight", 0, "weight in kg")
	f.IntVar(&raw.FastingGlucoseMgdl, "glucose", 0, "fasting glucose in mg/dL")
	f.IntVar(&raw.SystolicBP, "systolic", 0, "systolic blood pressure in mmHg")
	f.IntVar(&raw.DiastolicBP, "diastolic", 0, "diastolic blood pressure in mmHg")
	f.IntVar(&raw.Steps, "steps", 0, "steps walked today")
	f.IntVar(&raw.WaterCups, "water", 0, "200 mL cups of water today (0-20)")
	f.BoolVar(&dryRun, "dry-run", false, "compute and print without saving")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}
