package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/internal/db/repository"
	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

// TrackedChannelHandler handles registry membership requests for the daily
// snapshot batch.
type TrackedChannelHandler struct {
	registry repository.TrackedChannelRepository
}

// NewTrackedChannelHandler creates a new TrackedChannelHandler instance.
func NewTrackedChannelHandler(registry repository.TrackedChannelRepository) *TrackedChannelHandler {
	return &TrackedChannelHandler{registry: registry}
}

// trackChannelRequest is the body of POST /api/v1/tracked-channels.
type trackChannelRequest struct {
	ChannelID string `json:"channel_id" binding:"required"`
	Label     string `json:"label"`
}

// ListTrackedChannels handles GET /api/v1/tracked-channels.
func (h *TrackedChannelHandler) ListTrackedChannels(c *gin.Context) {
	entries, err := h.registry.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	if entries == nil {
		entries = []*model.TrackedChannel{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items": entries,
		"total": len(entries),
	})
}

// TrackChannel handles POST /api/v1/tracked-channels.
func (h *TrackedChannelHandler) TrackChannel(c *gin.Context) {
	var req trackChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Bad Request", "Invalid request payload: "+err.Error())
		return
	}

	entry, err := model.NewTrackedChannel(req.ChannelID, req.Label)
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.registry.Add(c.Request.Context(), entry); err != nil {
		handleError(c, err)
		return
	}

	logger.Log.Info("channel tracked", zap.String("channel_id", entry.ChannelID))
	c.JSON(http.StatusCreated, entry)
}

// UntrackChannel handles DELETE /api/v1/tracked-channels/:channelId.
func (h *TrackedChannelHandler) UntrackChannel(c *gin.Context) {
	channelID := c.Param("channelId")

	removed, err := h.registry.Remove(c.Request.Context(), channelID)
	if err != nil {
		handleError(c, err)
		return
	}
	if !removed {
		handleError(c, &model.NotFoundError{Resource: "tracked channel", ID: channelID})
		return
	}

	logger.Log.Info("channel untracked", zap.String("channel_id", channelID))
	c.Status(http.StatusNoContent)
}
