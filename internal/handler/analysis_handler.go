package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

// ChannelAnalyzer runs a full channel analysis.
type ChannelAnalyzer interface {
	Analyze(ctx context.Context, channelID string) (*model.AnalysisResult, error)
}

// AnalysisHandler handles channel analysis requests.
type AnalysisHandler struct {
	analyzer ChannelAnalyzer
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(analyzer ChannelAnalyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// GetChannelAnalysis handles GET /api/v1/channels/:channelId/analysis.
func (h *AnalysisHandler) GetChannelAnalysis(c *gin.Context) {
	channelID := c.Param("channelId")

	logger.Log.Info("analysis requested", zap.String("channel_id", channelID))

	result, err := h.analyzer.Analyze(c.Request.Context(), channelID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
