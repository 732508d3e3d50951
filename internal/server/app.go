// Package server initializes and runs the photo service. It wires the
// storage adapter, ensures the destination bucket on startup and runs
// the HTTP server until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/photokeeper/internal/logging"
	"github.com/dmitrijs2005/photokeeper/internal/server/config"
	"github.com/dmitrijs2005/photokeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/photokeeper/internal/server/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	adapter storage.Adapter
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	adapter := storage.NewS3Adapter(c)

	return &App{config: c, logger: logger, adapter: adapter}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) prepareBucket(ctx context.Context) {
	err := app.adapter.EnsureBucket(ctx)
	switch {
	case err == nil:
		app.logger.Info(ctx, "Bucket ready", "bucket", app.adapter.Bucket())
	case errors.Is(err, storage.ErrNotConfigured):
		// Uploads will answer 503 until the backend is configured.
		app.logger.Info(ctx, "Storage backend not configured, serving in degraded mode")
	default:
		app.logger.Error(ctx, err.Error())
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.Address, app.logger, app.adapter, app.config.PresignExpiry)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	app.prepareBucket(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
