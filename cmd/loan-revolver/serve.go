package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/iwvelando/loan-revolver/internal/server"
	"github.com/iwvelando/loan-revolver/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var (
		serverConfig string
		address      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plan API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfig)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := initializeLogger(cfg.Logging, root.logLevel, "info")
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx, logger, cfg, version); err != nil {
				logger.Error("server exited",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverConfig, "server-config", constants.DefaultServerConfigFile,
		"path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "",
		"listen address override, e.g. :8080")
	return cmd
}
