// Package server exposes the engine over HTTP.  It is a thin adapter: all
// puzzle semantics live in the internal packages, and play state stays with
// the caller.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jlave-dev/squarewise/internal/puzzle"
)

// Server wires the engine's HTTP routes.
type Server struct {
	log     *slog.Logger
	presets map[puzzle.Difficulty]puzzle.Preset // nil = built-in table
}

// New returns a Server logging through log (nil means slog.Default).
// presets overrides the built-in difficulty table when non-nil.
func New(log *slog.Logger, presets map[puzzle.Difficulty]puzzle.Preset) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, presets: presets}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/generate", s.handleGenerate)
	api.POST("/validate", s.handleValidate)
	api.POST("/hint", s.handleHint)
	api.POST("/score", s.handleScore)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// ListenAndServe runs the HTTP server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", "addr", addr)
	return s.Router().Run(addr)
}
