package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Verdier/homey-mcp-server/pkg/api/types"
	"github.com/Verdier/homey-mcp-server/pkg/homey"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	provider homey.Provider
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider homey.Provider) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// Health handles GET /health. The service reports degraded when no Homey
// connection is configured; the JSON-RPC endpoint stays usable either way.
func (h *HealthHandler) Health(c *gin.Context) {
	homeyStatus := "disconnected"
	if h.provider.IsConnected() {
		homeyStatus = "connected"
	}

	status := "healthy"
	httpStatus := http.StatusOK

	if homeyStatus != "connected" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Homey:     homeyStatus,
		Timestamp: time.Now(),
	})
}
