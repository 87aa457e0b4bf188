package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/SpookyBoy99/chroma/internal/configs"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg configs.ServerConfig, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + cfg.Port,
			Handler:        handler,
			MaxHeaderBytes: 1 << 20,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
	}
}

func (s *Server) Run() error {
	log.Println("[INFO] [Gallery-Service] Starting server on port:", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
