package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// VideoRanker ranks the persisted video corpus.
type VideoRanker interface {
	Rank(ctx context.Context, sortBy string, periodDays, limit int) (*model.VideoRankingResult, error)
}

// RankingHandler handles video ranking requests.
type RankingHandler struct {
	ranker VideoRanker
}

// NewRankingHandler creates a new RankingHandler instance.
func NewRankingHandler(ranker VideoRanker) *RankingHandler {
	return &RankingHandler{ranker: ranker}
}

// GetVideoRanking handles GET /api/v1/videos/ranking.
// Out-of-range or unparseable query values fall back to defaults rather
// than rejecting the request.
func (h *RankingHandler) GetVideoRanking(c *gin.Context) {
	sortBy := c.DefaultQuery("sortBy", "viewCount")
	periodDays := parseIntQuery(c, "periodDays", 0)
	limit := parseIntQuery(c, "limit", 0)

	result, err := h.ranker.Rank(c.Request.Context(), sortBy, periodDays, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
