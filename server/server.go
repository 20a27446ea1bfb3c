package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"planter/engine"

	"github.com/rs/zerolog/log"
)

// Server exposes one shared session over HTTP and a private session per
// websocket connection.
type Server struct {
	session         *engine.Session
	sessionOptions  []engine.Option
	count           int
	mux             *http.ServeMux
	shutdownTimeout time.Duration
}

type Option func(s *Server)

// WithCount caps how many recommendations a response carries.
func WithCount(n int) Option {
	return func(s *Server) {
		s.count = n
	}
}

// WithSessionOptions configures the sessions created for websocket clients.
func WithSessionOptions(options ...engine.Option) Option {
	return func(s *Server) {
		s.sessionOptions = options
	}
}

func New(session *engine.Session, options ...Option) *Server {
	if session == nil {
		panic("session must not be nil")
	}
	s := &Server{
		session:         session,
		count:           5,
		mux:             http.NewServeMux(),
		shutdownTimeout: 5 * time.Second,
	}
	for _, option := range options {
		option(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /schema", s.handleSchema)
	s.mux.HandleFunc("POST /recommend", s.handleRecommend)
	s.mux.HandleFunc("GET /session", s.handleSession)
	s.mux.HandleFunc("POST /session/apply", s.handleApply)
	s.mux.HandleFunc("POST /session/opponent", s.handleOpponent)
	s.mux.HandleFunc("POST /session/affirm", s.handleAffirm)
	s.mux.HandleFunc("POST /session/reset", s.handleReset)
	s.mux.HandleFunc("POST /session/round", s.handleRound)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	s.mux.HandleFunc("GET /qr", s.handleQR)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Msgf("advisor listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
