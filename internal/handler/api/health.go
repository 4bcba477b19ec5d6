package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessGate is the startup future plus a live probe.
type ReadinessGate interface {
	Resolved() (bool, error)
	Probe(ctx context.Context) error
}

type HealthHandler struct {
	gate ReadinessGate
}

func NewHealthHandler(gate ReadinessGate) *HealthHandler {
	return &HealthHandler{gate: gate}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// @Summary Readiness check
// @Description 503 while startup checks run, then 200 when the origin (and Redis, when configured) answer
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	// a startup timeout is not final; the live probe decides afterwards
	if resolved, _ := h.gate.Resolved(); !resolved {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	if err := h.gate.Probe(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
