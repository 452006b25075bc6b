package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	logs            *zap.SugaredLogger
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewHTTP builds the API server. writeTimeout and shutdownTimeout both have to cover the
// longest transfer, which blocks until the transaction is finalized.
func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string, writeTimeout, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		logs:            logger,
		shutdownTimeout: shutdownTimeout,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

// Run starts serving in the background. The returned channel receives the error that stopped the server.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.logs.Infow("http server listening", "addr", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()

	return errChan
}

// Shutdown stops accepting connections and waits for in-flight requests to finish.
func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.logs.Infow("http server shutting down", "timeout", s.shutdownTimeout.String())
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
