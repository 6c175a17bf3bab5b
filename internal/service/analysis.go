package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/internal/config"
	"github.com/kent15/youtube-analytics-platform/internal/db/repository"
	"github.com/kent15/youtube-analytics-platform/internal/metrics"
	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

const analysisCacheKeyPrefix = "analysis:"

// ChannelGateway fetches channel and video statistics from the remote
// platform. Implemented by the YouTube API client.
type ChannelGateway interface {
	FetchChannel(ctx context.Context, channelID string) (*model.Channel, error)
	FetchRecentVideos(ctx context.Context, uploadsPlaylistID string) ([]*model.Video, error)
}

// ResultCache stores serialized analysis results with a TTL. Implemented
// by the Redis cache.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// AnalysisService runs the full channel analysis pipeline: cache probe,
// remote fetch, persistence, classification and result assembly.
type AnalysisService struct {
	gateway    ChannelGateway
	cache      ResultCache
	channels   repository.ChannelRepository
	videos     repository.VideoRepository
	snapshots  repository.SnapshotRepository
	growth     *GrowthClassifier
	publishing *PublishingPatternClassifier
	cfg        config.AnalysisConfig

	// now is swappable for tests.
	now func() time.Time
}

// NewAnalysisService creates an AnalysisService.
func NewAnalysisService(
	gateway ChannelGateway,
	cache ResultCache,
	channels repository.ChannelRepository,
	videos repository.VideoRepository,
	snapshots repository.SnapshotRepository,
	cfg config.AnalysisConfig,
) *AnalysisService {
	return &AnalysisService{
		gateway:    gateway,
		cache:      cache,
		channels:   channels,
		videos:     videos,
		snapshots:  snapshots,
		growth:     NewGrowthClassifier(cfg.GrowthThresholdMultiplier),
		publishing: NewPublishingPatternClassifier(cfg.HighFrequencyPerWeek, cfg.MediumFrequencyPerWeek, cfg.ViralTopPercent, cfg.ViralShareThreshold),
		cfg:        cfg,
		now:        time.Now,
	}
}

// Analyze produces the analysis result for a channel. A valid cache entry
// short-circuits the whole pipeline; on a miss the result is computed from
// fresh remote data and cached best-effort.
func (s *AnalysisService) Analyze(ctx context.Context, channelID string) (*model.AnalysisResult, error) {
	if channelID == "" {
		return nil, &model.ValidationError{Field: "channelId", Message: "must not be empty"}
	}

	key := analysisCacheKeyPrefix + channelID

	if cached, err := s.cache.Get(ctx, key); err != nil {
		logger.Log.Warn("analysis cache probe failed", zap.String("channel_id", channelID), zap.Error(err))
	} else if cached != nil {
		var result model.AnalysisResult
		if decodeErr := json.Unmarshal(cached, &result); decodeErr != nil {
			logger.Log.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(decodeErr))
		} else {
			metrics.AnalysisCacheHits.Inc()
			logger.Log.Info("analysis served from cache", zap.String("channel_id", channelID))
			return &result, nil
		}
	}
	metrics.AnalysisCacheMisses.Inc()

	channel, err := s.gateway.FetchChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := s.channels.Upsert(ctx, channel); err != nil {
		return nil, err
	}

	snapshot, err := model.NewChannelSnapshot(channel.ChannelID, channel.SubscriberCount, channel.TotalViewCount, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.snapshots.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}

	videos, err := s.gateway.FetchRecentVideos(ctx, channel.UploadsPlaylistID)
	if err != nil {
		return nil, err
	}
	if err := s.videos.UpsertMany(ctx, videos); err != nil {
		return nil, err
	}

	cutoff := s.now().UTC().AddDate(0, 0, -s.cfg.RecentDays)
	recent := make([]*model.Video, 0, len(videos))
	for _, v := range videos {
		if !v.PublishedAt.Before(cutoff) {
			recent = append(recent, v)
		}
	}

	series, err := s.snapshots.GetRecent(ctx, channelID, s.cfg.SnapshotDays)
	if err != nil {
		return nil, err
	}

	result := s.assemble(channel, videos, recent, series)

	if payload, err := json.Marshal(result); err != nil {
		logger.Log.Warn("analysis result not cacheable", zap.String("channel_id", channelID), zap.Error(err))
	} else if err := s.cache.Set(ctx, key, payload, s.cfg.CacheTTL); err != nil {
		// A dead cache degrades latency, never correctness.
		logger.Log.Warn("analysis cache write failed", zap.String("channel_id", channelID), zap.Error(err))
	}

	return result, nil
}

// assemble builds the result. The detail list carries every fetched video;
// only the count, the average and the classifiers use the rolling-window
// subset.
func (s *AnalysisService) assemble(channel *model.Channel, videos, recent []*model.Video, series []*model.ChannelSnapshot) *model.AnalysisResult {
	details := make([]model.VideoDetail, 0, len(videos))
	for _, v := range videos {
		details = append(details, model.VideoDetail{
			VideoID:      v.VideoID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL(),
			PublishedAt:  v.PublishedAt,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
		})
	}

	var totalViews int64
	for _, v := range recent {
		totalViews += v.ViewCount
	}
	var avgViews float64
	if len(recent) > 0 {
		avgViews = float64(totalViews) / float64(len(recent))
	}

	points := make([]model.SnapshotPoint, 0, len(series))
	for _, snap := range series {
		points = append(points, model.SnapshotPoint{
			RecordedAt:      snap.RecordedAt,
			SubscriberCount: snap.SubscriberCount,
			TotalViewCount:  snap.TotalViewCount,
		})
	}

	return &model.AnalysisResult{
		Channel: model.ChannelInfo{
			ChannelID:       channel.ChannelID,
			ChannelName:     channel.ChannelName,
			SubscriberCount: channel.SubscriberCount,
			TotalViewCount:  channel.TotalViewCount,
			VideoCount:      channel.VideoCount,
		},
		RecentVideos:        details,
		RecentVideoCount:    len(recent),
		AverageViewCount:    avgViews,
		GrowthTrend:         s.growth.Classify(channel, recent),
		PublishingFrequency: s.publishing.ClassifyFrequency(recent),
		ContentStrategy:     s.publishing.ClassifyContentStrategy(recent),
		Snapshots:           points,
	}
}
