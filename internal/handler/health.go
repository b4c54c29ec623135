package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	ledger Pinger
}

// NewHealthHandler takes the ledger connection, or nil when the ledger is disabled.
func NewHealthHandler(ledger Pinger) *HealthHandler {
	return &HealthHandler{ledger: ledger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.ledger == nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"ledger": "disabled",
		})
		return
	}

	if err := h.ledger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"ledger": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"ledger": "connected",
	})
}
