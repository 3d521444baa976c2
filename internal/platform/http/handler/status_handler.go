// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the /api/status endpoint used by the frontend to
// detect which storage engine is live.
type StatusHandler struct {
	engine      string
	environment string
}

// NewStatusHandler creates a StatusHandler reporting the given engine name
// (e.g. "SQLite3", "Redis") and deployment environment.
func NewStatusHandler(engine, environment string) *StatusHandler {
	return &StatusHandler{engine: engine, environment: environment}
}

// Status responds with the service health and the active backend.
func (h *StatusHandler) Status(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	c.JSON(http.StatusOK, gin.H{
		"status":      "online",
		"engine":      h.engine,
		"environment": h.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
