package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ngmachado/web3-hooks/infrastructure/config"
	"github.com/ngmachado/web3-hooks/infrastructure/server"
	"github.com/ngmachado/web3-hooks/infrastructure/tunnel"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Receive webhooks and deliver notifications",
		Long: `Starts the HTTP server for the /tokenupgrade and /tokendowngrade webhooks
and the drain loop that processes one queued job per processing delay.
Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, rt.Container)
		},
	}

	return cmd
}

func runServe(ctx context.Context, c *config.Container) error {
	cfg := c.Config
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(&server.Dependencies{
		Intake:  c.WebhookIntakeUseCase,
		Logger:  c.Logger,
		Metrics: c.Metrics.Handler(),
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		c.Logger.Info("Server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	if cfg.Tunnel.Enabled {
		go func() {
			if err := tunnel.New(cfg.Tunnel.AuthToken, c.Logger).Serve(ctx, router); err != nil {
				c.Logger.Error("Tunnel failed", "error", err)
			}
		}()
	}

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		_ = c.DrainLoop.Run(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	c.Logger.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("server shutdown: %w", err)
	}
	<-loopDone

	return runErr
}
