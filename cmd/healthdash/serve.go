package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	adapthttp "healthdash/internal/adapter/http"
	"healthdash/internal/app"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(e *env) *cobra.Command {
	var addr, webDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and the web dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				e.cfg.Addr = addr
			}
			if cmd.Flags().Changed("web-dir") {
				e.cfg.WebDir = webDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			repo, closeStore, err := openStore(ctx, e.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			rs := app.NewRecordService(repo, e.log)
			ds := app.NewDashboardService(repo)
			srv := &http.Server{
				Addr:              e.cfg.Addr,
				Handler:           adapthttp.New(rs, ds, e.log, e.cfg.WebDir).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				e.log.Info(gctx, "listening", "addr", srv.Addr, "store", e.cfg.Store)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				e.log.Info(shutdownCtx, "shutting down")
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&webDir, "web-dir", "", "static files served at /")
	return cmd
}
