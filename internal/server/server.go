package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/BloggingApp/post-manager/internal/config"
)

type Server struct {
	mu         sync.Mutex
	httpServer *http.Server
}

func New() *Server {
	return &Server{}
}

// Run blocks until the server stops. A clean Shutdown is not an error.
func (s *Server) Run(cfg config.ServerConfig) error {
	httpServer := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        cfg.Handler,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
	}
	s.mu.Lock()
	s.httpServer = httpServer
	s.mu.Unlock()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer == nil {
		return nil
	}
	return httpServer.Shutdown(ctx)
}
