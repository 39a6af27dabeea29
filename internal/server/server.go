package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/handler"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done, then shuts the listener down and waits
// for it to return.
func (s *server) run(ctx context.Context) {
	served := make(chan struct{})

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go func() {
		defer close(served)
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
	case <-served:
	}

	s.logger.Info().Msg("server Shutdown gracefully")
}
