// Package tunnel exposes the local webhook server through an ngrok endpoint during development.
package tunnel

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"golang.ngrok.com/ngrok"
	"golang.ngrok.com/ngrok/config"
)

// Tunnel serves an HTTP handler on a public ngrok URL.
type Tunnel struct {
	authToken string
	logger    interfaces.Logger
}

// New creates a tunnel authenticated with authToken.
func New(authToken string, logger interfaces.Logger) *Tunnel {
	return &Tunnel{
		authToken: authToken,
		logger:    logger,
	}
}

// Serve opens the tunnel, logs its URL and serves handler until ctx is done.
func (t *Tunnel) Serve(ctx context.Context, handler http.Handler) error {
	tun, err := ngrok.Listen(ctx, config.HTTPEndpoint(), ngrok.WithAuthtoken(t.authToken))
	if err != nil {
		return fmt.Errorf("failed to create ngrok tunnel: %w", err)
	}

	t.logger.Info("ngrok tunnel created", "url", tun.URL())

	srv := &http.Server{Handler: handler}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.Serve(tun); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("tunnel server stopped: %w", err)
	}

	return nil
}
