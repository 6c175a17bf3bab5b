package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/kent15/youtube-analytics-platform/internal/db/repository"
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

const (
	defaultRankingLimit = 50
	maxRankingLimit     = 100
)

// RankingService ranks the persisted video corpus by a chosen statistic.
// Aggregates are computed over the whole filtered set, not just the
// returned page.
type RankingService struct {
	videos repository.VideoRepository
}

// NewRankingService creates a RankingService.
func NewRankingService(videos repository.VideoRepository) *RankingService {
	return &RankingService{videos: videos}
}

// Rank loads all persisted videos and returns the top entries by the
// requested sort key. An unknown sortBy falls back to viewCount; a limit
// outside (0, 100] falls back to 50; periodDays <= 0 disables the
// publication-window filter.
func (s *RankingService) Rank(ctx context.Context, sortBy string, periodDays, limit int) (*model.VideoRankingResult, error) {
	videos, err := s.videos.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return rankVideos(videos, sortBy, periodDays, limit, time.Now().UTC()), nil
}

// rankVideos is the pure ranking core, split out so tests can pin "now".
func rankVideos(videos []*model.Video, sortBy string, periodDays, limit int, now time.Time) *model.VideoRankingResult {
	if limit <= 0 || limit > maxRankingLimit {
		limit = defaultRankingLimit
	}

	filtered := videos
	if periodDays > 0 {
		cutoff := now.AddDate(0, 0, -periodDays)
		filtered = make([]*model.Video, 0, len(videos))
		for _, v := range videos {
			if !v.PublishedAt.Before(cutoff) {
				filtered = append(filtered, v)
			}
		}
	}

	key := sortKey(sortBy)
	sorted := make([]*model.Video, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})

	var totalViews, totalLikes int64
	for _, v := range filtered {
		totalViews += v.ViewCount
		totalLikes += v.LikeCount
	}

	result := &model.VideoRankingResult{
		TotalCount:     len(filtered),
		TotalViewCount: totalViews,
		Items:          []model.VideoRankingItem{},
	}
	if len(filtered) > 0 {
		result.AverageViewCount = totalViews / int64(len(filtered))
	}
	if totalViews > 0 {
		result.AverageLikeRate = roundRate(float64(totalLikes) / float64(totalViews) * 100)
	}

	if limit > len(sorted) {
		limit = len(sorted)
	}
	for i, v := range sorted[:limit] {
		result.Items = append(result.Items, model.VideoRankingItem{
			Rank:         i + 1,
			VideoID:      v.VideoID,
			Title:        v.Title,
			ChannelID:    v.ChannelID,
			ThumbnailURL: v.ThumbnailURL(),
			PublishedAt:  v.PublishedAt,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
			LikeRate:     likeRate(v),
		})
	}

	return result
}

func sortKey(sortBy string) func(*model.Video) float64 {
	switch strings.ToLower(sortBy) {
	case "likecount":
		return func(v *model.Video) float64 { return float64(v.LikeCount) }
	case "commentcount":
		return func(v *model.Video) float64 { return float64(v.CommentCount) }
	case "likerate":
		return func(v *model.Video) float64 {
			if v.ViewCount == 0 {
				return 0
			}
			return float64(v.LikeCount) / float64(v.ViewCount)
		}
	default:
		return func(v *model.Video) float64 { return float64(v.ViewCount) }
	}
}

// likeRate is likes over views as a percentage, 0 for unviewed videos.
func likeRate(v *model.Video) float64 {
	if v.ViewCount == 0 {
		return 0
	}
	return roundRate(float64(v.LikeCount) / float64(v.ViewCount) * 100)
}

func roundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
