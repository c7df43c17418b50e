package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planarkit/planarkit/internal/server"
	"github.com/planarkit/planarkit/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planarity API over HTTP",
		Long: `Serve the planarity API over HTTP.

The server exposes embedding, simultaneous embedding, and rendering as JSON
endpoints. Configuration is read from a TOML file; --listen overrides the
configured address. Without a config file the server listens on :8080 and
runs without a cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, listen)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, listen string) error {
	cfg := server.DefaultConfig()
	if configPath != "" {
		loaded, err := server.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if listen != "" {
		cfg.Listen = listen
	}

	cch, err := cfg.Cache.OpenCache(ctx)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cch.Close()

	runner := pipeline.NewRunner(cch, nil, c.Logger)
	srv := server.New(cfg, runner, c.Logger)

	c.Logger.Info("starting server", "listen", cfg.Listen, "cache", cfg.Cache.Backend)
	return srv.Run(ctx)
}
