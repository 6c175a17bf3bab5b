// Package service contains the analysis pipeline: classifiers, the video
// ranking engine, the cache-aside orchestrator and the snapshot scheduler.
package service

import (
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// GrowthClassifier compares a channel's recent average view performance to
// its lifetime average and assigns a growth label.
type GrowthClassifier struct {
	thresholdMultiplier float64
}

// NewGrowthClassifier creates a GrowthClassifier. The multiplier must be
// greater than 1; invalid values fall back to 1.2.
func NewGrowthClassifier(thresholdMultiplier float64) *GrowthClassifier {
	if thresholdMultiplier <= 1.0 {
		thresholdMultiplier = 1.2
	}
	return &GrowthClassifier{thresholdMultiplier: thresholdMultiplier}
}

// Classify assigns a growth label. A silent channel (no recent videos) is
// penalized as Declining; a channel with no historical baseline is Stable.
func (g *GrowthClassifier) Classify(channel *model.Channel, recentVideos []*model.Video) model.GrowthTrend {
	if len(recentVideos) == 0 {
		return model.GrowthTrendDeclining
	}

	if channel.VideoCount == 0 || channel.TotalViewCount == 0 {
		return model.GrowthTrendStable
	}

	channelAvg := float64(channel.TotalViewCount) / float64(channel.VideoCount)

	var total int64
	for _, v := range recentVideos {
		total += v.ViewCount
	}
	recentAvg := float64(total) / float64(len(recentVideos))

	if recentAvg >= channelAvg*g.thresholdMultiplier {
		return model.GrowthTrendGrowing
	}
	if recentAvg < channelAvg/g.thresholdMultiplier {
		return model.GrowthTrendDeclining
	}
	return model.GrowthTrendStable
}
