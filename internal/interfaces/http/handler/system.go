package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/infrastructure/logger"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

// MsgServerRunning is the liveness message
const MsgServerRunning = "Vyapar Saathi Server is running!"

// Pinger is a dependency the readiness check pings
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping calls f
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// SystemHandler serves health and readiness checks
type SystemHandler struct {
	BaseHandler
	checks  map[string]Pinger
	timeout time.Duration
}

// NewSystemHandler creates a SystemHandler. checks maps a dependency name to its check.
func NewSystemHandler(checks map[string]Pinger) *SystemHandler {
	return &SystemHandler{checks: checks, timeout: 3 * time.Second}
}

// Health handles GET /health and GET /api/health
// @Summary      Liveness check
// @Description  Report that the server is running
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.MessageResponse
// @Router       /health [get]
// @Router       /api/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: MsgServerRunning})
}

// ReadyResponse lists the state of each dependency
type ReadyResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}

// Ready handles GET /ready
// @Summary      Readiness check
// @Description  Ping the database and, when configured, Redis
// @Tags         system
// @Produce      json
// @Success      200 {object} handler.ReadyResponse
// @Failure      503 {object} handler.ReadyResponse
// @Router       /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := ReadyResponse{Status: "ready", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			logger.GetGinLogger(c).Warn("Readiness check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = "unavailable"
			resp.Status = "not ready"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	c.JSON(status, resp)
}
