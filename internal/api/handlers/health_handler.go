package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/version"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check responds with service metadata and database connectivity for uptime checks.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "connected"
	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	status := "healthy"
	if dbStatus != "connected" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC(),
		"service":   version.Name,
		"version":   version.Version,
	})
}

// APIRootHandler responds with service info and documentation pointers.
func APIRootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": version.Name + " IOC Manager API v" + version.Version,
		"health":  "/health",
		"metrics": "/metrics",
	})
}
