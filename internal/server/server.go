package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/api/middleware"
	"github.com/blueteamlabs/argus/internal/api/routes"
	"github.com/blueteamlabs/argus/internal/config"
)

// Server wraps the HTTP engine and shared dependencies for easier testing.
type Server struct {
	Engine *gin.Engine
	cfg    config.Config
}

// New wires up the HTTP router and registers API routes.
func New(db *gorm.DB, cfg config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	// Unknown body fields are rejected at the boundary, not silently dropped.
	binding.EnableDecoderDisallowUnknownFields = true

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(cfg.IsDevelopment()),
		middleware.CORS(),
	)

	if err := routes.Register(router, db); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	attachFrontend(router, cfg.FrontendDir)

	return &Server{Engine: router, cfg: cfg}, nil
}

// attachFrontend serves the static dashboard when the directory exists.
// Unknown API paths still return JSON; everything else falls back to
// index.html.
func attachFrontend(router *gin.Engine, frontendDir string) {
	serveIndex := false
	if frontendDir != "" {
		if info, err := os.Stat(frontendDir); err == nil && info.IsDir() {
			serveIndex = true
			router.StaticFS("/static", gin.Dir(frontendDir, false))
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if !serveIndex || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "route not found"})
			return
		}

		c.File(filepath.Join(frontendDir, "index.html"))
	})
}

// Run starts the HTTP server with proper shutdown semantics.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.HTTPPort),
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
