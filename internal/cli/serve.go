package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/dosecalc/internal/api"
	"github.com/rshade/dosecalc/internal/config"
	"github.com/rshade/dosecalc/internal/logging"
)

// NewServeCmd creates the "serve" command that runs the HTTP API.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		Long: `Serve the calculators over HTTP until SIGINT or SIGTERM:

  GET  /health
  GET  /v1/beverages
  POST /v1/drinks
  POST /v1/nicotine
  GET  /v1/reference/drinks
  GET  /v1/reference/nicotine

Invalid input returns 400 with {"error", "message"}.`,
		Example: `  dosecalc serve --addr 127.0.0.1:9000

  curl -s localhost:8080/v1/drinks -d '{"beverage":"wine","volume":150}'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, "+config.DefaultServerAddress+")")
	return cmd
}

func executeServe(cmd *cobra.Command, addr string) error {
	cfg := config.GetGlobalConfig()

	serverCfg := cfg.Server
	if addr != "" {
		serverCfg.Address = addr
	}
	if err := serverCfg.Validate(); err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}

	drinkPreset, err := cfg.Drinks.Request()
	if err != nil {
		return inputError(fmt.Errorf("drinks defaults in config: %w", err))
	}
	nicotinePreset := cfg.Nicotine.Input()
	if err = nicotinePreset.Validate(); err != nil {
		return inputError(fmt.Errorf("nicotine defaults in config: %w", err))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverLogger := logging.ComponentLogger(baseLogger, "api")
	srv := api.NewServer(serverCfg, drinkPreset, nicotinePreset, serverLogger)

	cmd.Printf("Serving dosecalc API on %s\n", serverCfg.Address)
	return srv.Run(ctx)
}
