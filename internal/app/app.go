// Package app wires configuration, storage, cache and HTTP routing into a
// runnable service.
package app

import (
	"context"
	"net/http"
	"time"

	"travel-service/internal/config"
)

// App owns the HTTP server and the resources behind it. Shutdown drains
// in-flight requests before releasing them.
type App struct {
	httpServer *http.Server
	cleanup    func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	router, cleanup, err := setupHTTP(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		httpServer: &http.Server{
			Addr:              ":" + cfg.AppPort,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		cleanup: cleanup,
	}, nil
}

func (a *App) Run() error {
	return a.httpServer.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if a.cleanup == nil {
		return nil
	}
	return a.cleanup()
}
