package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rory34/retail-rewards/internal/dto"
	"github.com/Rory34/retail-rewards/internal/service"
)

type RunHandler struct {
	svc *service.RunService
}

// NewRunHandler accepts a nil service when the ledger is disabled.
func NewRunHandler(svc *service.RunService) *RunHandler {
	return &RunHandler{svc: svc}
}

func (h *RunHandler) List(c *gin.Context) {
	if h.svc == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "calculation ledger is disabled"})
		return
	}

	overview, err := h.svc.Overview(c.Request.Context(), dto.ParseLimit(c, h.svc.Limit()))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
