package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuotaReader exposes the current state of the daily quota budget.
type QuotaReader interface {
	Remaining() int
	Limit() int
}

// QuotaHandler handles quota status requests.
type QuotaHandler struct {
	budget QuotaReader
}

// NewQuotaHandler creates a new QuotaHandler instance.
func NewQuotaHandler(budget QuotaReader) *QuotaHandler {
	return &QuotaHandler{budget: budget}
}

// GetQuota handles GET /api/v1/quota.
func (h *QuotaHandler) GetQuota(c *gin.Context) {
	remaining := h.budget.Remaining()
	limit := h.budget.Limit()

	c.JSON(http.StatusOK, gin.H{
		"daily_limit":     limit,
		"used_units":      limit - remaining,
		"remaining_units": remaining,
	})
}
