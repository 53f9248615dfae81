package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/agbru/bigcalc/internal/logging"
)

const (
	metricsReadHeaderTimeout = 5 * time.Second
	metricsShutdownTimeout   = 5 * time.Second
)

// metricsServer exposes the Prometheus handler on /metrics.
type metricsServer struct {
	httpServer *http.Server
	logger     logging.Logger
}

func newMetricsServer(handler http.Handler, logger logging.Logger) *metricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return &metricsServer{
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: metricsReadHeaderTimeout,
		},
		logger: logger,
	}
}

// Serve accepts connections on ln until ctx ends, then shuts down.
func (s *metricsServer) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	s.logger.Info("metrics server listening", logging.String("addr", ln.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve metrics: %w", err)
	}
}
