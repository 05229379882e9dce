package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirematch-server/internal/core"
)

// APIHandlers provides the read-only REST endpoints.
type APIHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(hub *core.Hub, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{hub: hub, log: logger}
}

// StatsResponse reports the current live connection count, for
// external dashboards.
type StatsResponse struct {
	Connections int64 `json:"connections"`
}

// Health handles liveness probes.
// GET /healthz
func (h *APIHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Stats reports the current connection count.
// GET /api/stats
func (h *APIHandlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{Connections: h.hub.ConnectionCount()})
}
