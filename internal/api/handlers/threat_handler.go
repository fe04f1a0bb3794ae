package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/services"
)

type ThreatHandler struct {
	service *services.ThreatService
}

func NewThreatHandler(db *gorm.DB) *ThreatHandler {
	return &ThreatHandler{
		service: services.NewThreatService(db),
	}
}

// createThreatRequest is the POST body. Server-assigned fields (id,
// date_detected) are deliberately absent.
type createThreatRequest struct {
	Type     string  `json:"type" binding:"required"`
	Value    string  `json:"value" binding:"required"`
	Severity string  `json:"severity" binding:"required"`
	Source   *string `json:"source"`
}

// respondError writes the error body the dashboard expects.
func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// Create handles POST /api/threats
func (h *ThreatHandler) Create(c *gin.Context) {
	var req createThreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	threat, err := h.service.Create(services.CreateThreatInput{
		Type:     req.Type,
		Value:    req.Value,
		Severity: req.Severity,
		Source:   req.Source,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateValue):
			respondError(c, http.StatusConflict, fmt.Sprintf("IOC with value '%s' already exists", req.Value))
		case services.IsValidationError(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, threat)
}

// List handles GET /api/threats with optional type/severity filters and
// skip/limit pagination.
func (h *ThreatHandler) List(c *gin.Context) {
	skip, err := parseQueryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		respondError(c, http.StatusBadRequest, "skip must be a non-negative integer")
		return
	}
	limit, err := parseQueryInt(c, "limit", services.DefaultListLimit)
	if err != nil || limit < 1 {
		respondError(c, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	threats, err := h.service.List(services.ThreatFilter{
		Type:     c.Query("type"),
		Severity: c.Query("severity"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, threats)
}

// Get handles GET /api/threats/:id
func (h *ThreatHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid threat ID")
		return
	}

	threat, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrThreatNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Threat with ID %d not found", id))
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, threat)
}

// Delete handles DELETE /api/threats/:id
func (h *ThreatHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid threat ID")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrThreatNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Threat with ID %d not found", id))
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Threat %d deleted successfully", id),
		"id":      id,
	})
}

// Statistics handles GET /api/threats/stats/summary. Gin's router cannot hold
// a static "stats" segment next to the ":id" wildcard, so the route is
// registered as "/threats/:id/summary" and guarded here.
func (h *ThreatHandler) Statistics(c *gin.Context) {
	if c.Param("id") != "stats" {
		respondError(c, http.StatusNotFound, "route not found")
		return
	}

	stats, err := h.service.Statistics()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func parseQueryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
