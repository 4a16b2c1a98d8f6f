package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handler http.Handler, cfg config.GatewayConfig, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.ListenAddress).Msg("creating new server...")

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
		},
		shutdownTimeout: cfg.Server.ShutdownTimeout.Std(),
		logger:          logger,
	}
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives and then shuts
// down gracefully.
func (s *Server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

// Run binds the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrListen, s.httpServer.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then stops accepting
// and waits up to the shutdown timeout for in-flight requests. It returns
// nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("launching HTTP server")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		s.logger.Info().Msg("server shut down gracefully")
		return nil
	})

	return g.Wait()
}
