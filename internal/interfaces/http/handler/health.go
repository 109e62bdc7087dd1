package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mia/data-service/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Pinger checks a backing dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the unauthenticated liveness endpoint
type HealthHandler struct {
	service   string
	db        Pinger
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(service string, db Pinger) *HealthHandler {
	return &HealthHandler{
		service:   service,
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Health reports 200 when the database answers a ping and 503 otherwise
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Service:  h.service,
		Database: "ok",
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "error"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
