package handlers

import (
	"context"
	"net/http"
	"time"

	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health runs every check and answers 503 if any of them fails.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			utils.LogError(err, "Health check failed", map[string]interface{}{"check": name})
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	if status != http.StatusOK {
		c.JSON(status, gin.H{
			"status": "unavailable",
			"checks": results,
			"error":  utils.NewAPIError(status, utils.ErrCodeServiceUnavailable, "One or more dependencies are unavailable.", ""),
		})
		return
	}
	c.JSON(status, gin.H{"status": "ok", "checks": results})
}
