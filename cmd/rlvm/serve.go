package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cuemby/rlvm/pkg/api"
	"github.com/cuemby/rlvm/pkg/log"
)

// serve runs srv, and the health endpoint when --metrics-addr is set, until
// SIGINT or SIGTERM.
func serve(cmd *cobra.Command, srv *api.Server, ready api.ReadyFunc) error {
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	var healthServer *api.HealthServer
	if metricsAddr != "" {
		healthServer = api.NewHealthServer(ready)
		go func() {
			log.Logger.Info().Str("addr", metricsAddr).Msg("Health endpoint listening")
			if err := healthServer.Start(metricsAddr); err != nil {
				errCh <- fmt.Errorf("health server error: %w", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		log.Logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	case runErr = <-errCh:
		log.Logger.Error().Err(runErr).Msg("Shutting down")
	}

	if healthServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := healthServer.Shutdown(ctx); err != nil {
			log.Logger.Warn().Err(err).Msg("Failed to stop health endpoint")
		}
	}
	srv.Stop()

	log.Logger.Info().Msg("Shutdown complete")
	return runErr
}

// nodeIDFlag reads --node-id and checks that it is a UUID.
func nodeIDFlag(cmd *cobra.Command) (string, error) {
	raw, _ := cmd.Flags().GetString("node-id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid --node-id %q: %w", raw, err)
	}
	return id.String(), nil
}
