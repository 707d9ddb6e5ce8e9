package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dminhvu/GSD-222/internal/config"
	"github.com/dminhvu/GSD-222/internal/errors"
	"github.com/dminhvu/GSD-222/ui"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load configuration")
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			server := ui.NewServer(cfg)
			if err := server.Initialize(); err != nil {
				return errors.Wrap(err, "failed to initialize server")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LEDGER_ADDR)")

	return cmd
}
