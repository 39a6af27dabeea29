package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg *config.ServerConfig, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		// listener close errors
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
