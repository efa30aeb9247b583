package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server exposes /metrics and /healthz.
type Server struct {
	http *http.Server
	log  logger.Logger
}

// NewServer returns nil when the service has nothing to serve.
func NewServer(svc *Service, log logger.Logger) *Server {
	if !svc.Enabled() {
		return nil
	}

	return &Server{
		http: &http.Server{
			Addr:              svc.cfg.Listen,
			Handler:           svc.Handler(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// Handler routes the metrics endpoints.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return r
}

// Run serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	errFactory := errors.New()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("listen", s.http.Addr).Msg("Metrics endpoint listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errFactory.Wrap(ErrServe, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return errFactory.Wrap(ErrShutdown, err)
	}

	return nil
}
