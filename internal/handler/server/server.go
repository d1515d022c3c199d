package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type Server struct {
	server *http.Server
}

func NewServer(handler http.Handler, addr string) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start блокирует до остановки; штатная остановка не считается ошибкой
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("server starting")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
