package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/charlescarrari/moon"
	"github.com/charlescarrari/moon/internal/config"
	"github.com/charlescarrari/moon/pkg/host"
	"github.com/charlescarrari/moon/pkg/metrics"
	"github.com/charlescarrari/moon/pkg/server"
)

func previewCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a live preview of the built-in demo app",
		Long: `Serve the built-in demo app with live updates over WebSocket.

The demo tree is reconciled in memory on every event and the rendered HTML
is pushed to connected browsers. Prometheus metrics for reconciliation
operations are exposed at /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}
			moon.Silent = cfg.Silent

			demo := &demoApp{}
			srv := server.New(server.Config{
				Addr:  cfg.Addr(),
				Title: cfg.Name,
			}, demo.root)

			srv.App().Bus().On("increment", func(host.Event) {
				demo.count++
			})
			srv.App().Reconciler().SetRecorder(metrics.NewRecorder())

			printBanner()
			info("preview at http://%s", cfg.Addr())

			// Serve until interrupted.
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides moon.json)")

	return cmd
}
