// Command healthdash records daily health readings and shows the dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"healthdash/internal/config"
	"healthdash/internal/logging"
)

// env carries what every subcommand needs once flags are parsed.
type env struct {
	configPath  string
	envFile     string
	store       string
	dataFile    string
	databaseURL string
	logLevel    string

	cfg *config.Config
	log logging.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "healthdash",
		Short: "Daily health metrics: BMI, BMR and a composite score",
		Long: `healthdash computes BMI, basal metabolic rate and a health score from
daily readings, appends each day's record to a store and renders the
dashboard, history and weight/score trend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.configPath, "config", "", "YAML config file")
	pf.StringVar(&e.envFile, "env-file", ".env", "dotenv file read when present")
	pf.StringVar(&e.store, "store", "", "record store: csv, sqlite, postgres or memory")
	pf.StringVar(&e.dataFile, "data-file", "", "CSV or SQLite file path")
	pf.StringVar(&e.databaseURL, "database-url", "", "Postgres connection string")
	pf.StringVar(&e.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newServeCmd(e),
		newRecordCmd(e),
		newDashboardCmd(e),
		newHistoryCmd(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath, e.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for name, pair := range map[string][2]*string{
		"store":        {&cfg.Store, &e.store},
		"data-file":    {&cfg.DataFile, &e.dataFile},
		"database-url": {&cfg.DatabaseURL, &e.databaseURL},
		"log-level":    {&cfg.LogLevel, &e.logLevel},
	} {
		if flags.Changed(name) {
			*pair[0] = *pair[1]
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = log
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
