// Package server exposes the list and detail screens over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pokedex/app/internal/config"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	cfg    config.ServerConfig
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, handler *Handler) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, handler)

	return &Server{
		cfg:    cfg.Server,
		router: router,
		http: &http.Server{
			Addr:         cfg.Server.Address(),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/healthz", h.Healthz)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/next", h.NextPage)
		sessions.DELETE("/:id", h.DeleteSession)
	}

	r.GET("/pokemon/:name", h.GetPokemon)
	r.GET("/pokemon_detail_screen/:color/:name", h.GetDetailRoute)
}

// Start blocks until the server stops.
func (s *Server) Start() error {
	log.Infof("🚀 Listening on %s", s.cfg.Address())
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server listen: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down server...")
	return s.http.Shutdown(ctx)
}

// Router returns the gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
