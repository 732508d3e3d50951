// Package httpapi exposes the photo service over HTTP: multipart
// uploads, gallery listing, deletion, SVG placeholders and a storage
// status probe, plus health and Prometheus endpoints.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/photokeeper/internal/logging"
	"github.com/dmitrijs2005/photokeeper/internal/server/storage"
)

type Server struct {
	address       string
	logger        logging.Logger
	adapter       storage.Adapter
	presignExpiry time.Duration
}

func NewServer(address string, l logging.Logger, adapter storage.Adapter, presignExpiry time.Duration) *Server {
	return &Server{
		address:       address,
		logger:        l.With("module", "http_server"),
		adapter:       adapter,
		presignExpiry: presignExpiry,
	}
}

// Routes wires the full route tree. Split out of Run so tests can mount
// the handler on httptest.NewServer.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(metricsMiddleware)

	r.Route("/api/photos", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
		r.Get("/", s.handleList)
		r.Delete("/{imageID}", s.handleDelete)
		r.Get("/placeholder/{photoID}", s.handlePlaceholder)
		r.Get("/status", s.handleStatus)
	})

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Routes(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
