package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/receptkylen/backend/config"
	"github.com/receptkylen/backend/internal/api"
	"github.com/receptkylen/backend/internal/middleware"
	"github.com/receptkylen/backend/internal/session"
)

// Server represents the HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New assembles the gin engine: middleware chain, templates, static assets
// and all routes.
func New(cfg *config.Config, handler *api.Handler, sessions *session.Manager) *Server {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Identity(sessions))

	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	handler.RegisterRoutes(router)

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
