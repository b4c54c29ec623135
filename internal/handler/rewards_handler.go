package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rory34/retail-rewards/internal/dto"
	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/service"
)

type RewardsHandler struct {
	svc  *service.RewardsService
	msgs *messages.Catalog
}

func NewRewardsHandler(svc *service.RewardsService, msgs *messages.Catalog) *RewardsHandler {
	return &RewardsHandler{svc: svc, msgs: msgs}
}

func (h *RewardsHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRewardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResult(h.msgs.Get(messages.MalformedRequest)))
		return
	}

	if !req.HasRequiredLists() {
		c.JSON(http.StatusBadRequest, dto.ErrorResult(h.msgs.Get(messages.MissingLists)))
		return
	}

	outcome := h.svc.Calculate(c.Request.Context(), req.RawCustomers(), req.RawTransactions())

	status := http.StatusOK
	if outcome.HasErrors() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, dto.NewRewardsResultResponse(outcome))
}
