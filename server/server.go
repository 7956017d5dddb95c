package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Config holds server configuration
type Config struct {
	Addr string
}

// Server exposes composition over HTTP. Every request composes with its own
// random source, so requests run in parallel without shared state.
type Server struct {
	config Config
	router *chi.Mux
	logger *logrus.Logger
}

// New creates a new server
func New(cfg Config, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Server{
		config: cfg,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.setupRoutes()
	return s
}

// Handler returns the root handler (used by tests)
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/moods", s.handleMoods)
	r.Get("/moods/{name}", s.handleMood)
	r.Get("/compose/{name}", s.handleCompose)
	r.Get("/compose/{name}/midi", s.handleComposeMIDI)
}

// Run serves until ctx is done or SIGINT/SIGTERM arrives
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.WithError(err).Error("shutdown error")
		}
		close(done)
	}()

	s.logger.WithField("addr", s.config.Addr).Info("server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}
