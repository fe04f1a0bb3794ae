package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/api/handlers"
	"github.com/blueteamlabs/argus/internal/metrics"
	"github.com/blueteamlabs/argus/internal/models"
)

// Register wires up API routes and performs automatic migrations.
func Register(router *gin.Engine, db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Threat{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")
	api.GET("", handlers.APIRootHandler)

	threatHandler := handlers.NewThreatHandler(db)
	api.GET("/threats", threatHandler.List)
	api.POST("/threats", threatHandler.Create)
	api.GET("/threats/:id", threatHandler.Get)
	api.DELETE("/threats/:id", threatHandler.Delete)
	api.GET("/threats/:id/summary", threatHandler.Statistics)

	return nil
}
