package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/saveurlabs/cookbook/config"
	"github.com/saveurlabs/cookbook/internal/api"
	"github.com/saveurlabs/cookbook/internal/database"
	"github.com/saveurlabs/cookbook/internal/middleware"
	"github.com/saveurlabs/cookbook/internal/repository"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance. limiter may be nil, in which case
// mutating routes are not rate limited.
func New(cfg *config.Config, db *database.DB, repo *repository.Repository, limiter *middleware.RateLimiter) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	var mutate []gin.HandlerFunc
	if limiter != nil {
		mutate = append(mutate, limiter.Middleware())
	}

	// Register routes
	api.NewHealthHandler(db).RegisterRoutes(router)
	v1 := router.Group("/v1")
	api.NewIngredientHandler(repo).RegisterRoutes(v1, mutate...)
	api.NewRecipeHandler(repo).RegisterRoutes(v1, mutate...)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
