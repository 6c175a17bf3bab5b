package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kent15/youtube-analytics-platform/internal/config"
	"github.com/kent15/youtube-analytics-platform/internal/db/repository"
	"github.com/kent15/youtube-analytics-platform/internal/metrics"
	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

// Analyzer runs a channel analysis. Implemented by AnalysisService.
type Analyzer interface {
	Analyze(ctx context.Context, channelID string) (*model.AnalysisResult, error)
}

// SnapshotScheduler wakes once a day at the configured wall-clock time and
// analyzes every tracked channel, which refreshes its daily snapshot as a
// side effect. Channels are processed sequentially; one channel's failure
// never stops the batch.
type SnapshotScheduler struct {
	analyzer Analyzer
	registry repository.TrackedChannelRepository
	cfg      config.BatchConfig

	now func() time.Time
}

// NewSnapshotScheduler creates a SnapshotScheduler.
func NewSnapshotScheduler(analyzer Analyzer, registry repository.TrackedChannelRepository, cfg config.BatchConfig) *SnapshotScheduler {
	return &SnapshotScheduler{
		analyzer: analyzer,
		registry: registry,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, executing one batch per day.
func (s *SnapshotScheduler) Run(ctx context.Context) {
	logger.Log.Info("snapshot scheduler started",
		zap.Bool("enabled", s.cfg.Enabled),
		zap.String("execution_time", s.cfg.ExecutionTime),
	)

	for {
		delay := nextRunDelay(s.now(), s.cfg.ExecutionTime)
		logger.Log.Info("next snapshot batch scheduled", zap.Duration("in", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Log.Info("snapshot scheduler stopped")
			return
		case <-timer.C:
		}

		s.runBatch(ctx)
	}
}

// runBatch executes a single batch pass over the tracked registry.
func (s *SnapshotScheduler) runBatch(ctx context.Context) {
	if !s.cfg.Enabled {
		logger.Log.Info("snapshot batch disabled, skipping")
		return
	}

	runID := uuid.New().String()
	log := logger.Log.With(zap.String("run_id", runID))

	tracked, err := s.registry.List(ctx)
	if err != nil {
		log.Error("snapshot batch could not load registry", zap.Error(err))
		return
	}
	if len(tracked) == 0 {
		log.Info("no tracked channels, skipping snapshot batch")
		return
	}

	log.Info("snapshot batch started", zap.Int("channels", len(tracked)))
	start := s.now()

	var succeeded, failed int
	for _, entry := range tracked {
		if ctx.Err() != nil {
			log.Warn("snapshot batch cancelled",
				zap.Int("succeeded", succeeded),
				zap.Int("failed", failed),
			)
			return
		}

		if _, err := s.analyzer.Analyze(ctx, entry.ChannelID); err != nil {
			failed++
			metrics.BatchChannels.WithLabelValues("failure").Inc()
			log.Warn("snapshot batch channel failed",
				zap.String("channel_id", entry.ChannelID),
				zap.Error(err),
			)
			continue
		}
		succeeded++
		metrics.BatchChannels.WithLabelValues("success").Inc()
	}

	log.Info("snapshot batch finished",
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
		zap.Duration("took", s.now().Sub(start)),
	)
}

// nextRunDelay computes the time until the next daily occurrence of the
// "HH:MM" execution time, relative to now. An unparseable execution time
// falls back to 03:00.
func nextRunDelay(now time.Time, executionTime string) time.Duration {
	var hour, minute int
	if _, err := fmt.Sscanf(executionTime, "%d:%d", &hour, &minute); err != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		hour, minute = 3, 0
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
