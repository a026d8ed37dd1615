package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/namepulse/internal/adapters/http/api"
	"github.com/okian/namepulse/internal/app"
	"github.com/okian/namepulse/internal/config"
	"github.com/okian/namepulse/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the report, health and metrics over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := logger.SetLevelString(cfg.LogLevel); err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		svc, err := app.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		mux := http.NewServeMux()
		api.NewServer(svc).Register(ctx, mux)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		log := logger.Named("serve")
		errCh := make(chan error, 1)
		go func() {
			log.Info(ctx, "listening", logger.String("addr", cfg.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		log.Info(context.Background(), "stopped")
		return nil
	},
}
