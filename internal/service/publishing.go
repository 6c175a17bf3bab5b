package service

import (
	"math"
	"sort"

	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// PublishingPatternClassifier derives a publishing-cadence label and a
// content-strategy label from the temporal and view-count distribution of
// recent videos.
type PublishingPatternClassifier struct {
	highFrequencyPerWeek   int
	mediumFrequencyPerWeek int
	topPercent             int
	shareThreshold         int
}

// NewPublishingPatternClassifier creates a PublishingPatternClassifier.
func NewPublishingPatternClassifier(highFrequencyPerWeek, mediumFrequencyPerWeek, topPercent, shareThreshold int) *PublishingPatternClassifier {
	return &PublishingPatternClassifier{
		highFrequencyPerWeek:   highFrequencyPerWeek,
		mediumFrequencyPerWeek: mediumFrequencyPerWeek,
		topPercent:             topPercent,
		shareThreshold:         shareThreshold,
	}
}

// ClassifyFrequency assigns a cadence label from videos-per-week over the
// span between the earliest and latest publication. The span is floored at
// one week so same-day clusters don't blow up the cadence.
func (p *PublishingPatternClassifier) ClassifyFrequency(recentVideos []*model.Video) model.PublishingFrequency {
	if len(recentVideos) == 0 {
		return model.PublishingFrequencyLow
	}

	earliest := recentVideos[0].PublishedAt
	latest := recentVideos[0].PublishedAt
	for _, v := range recentVideos[1:] {
		if v.PublishedAt.Before(earliest) {
			earliest = v.PublishedAt
		}
		if v.PublishedAt.After(latest) {
			latest = v.PublishedAt
		}
	}

	weeks := math.Max(latest.Sub(earliest).Hours()/24/7, 1.0)
	videosPerWeek := float64(len(recentVideos)) / weeks

	if videosPerWeek >= float64(p.highFrequencyPerWeek) {
		return model.PublishingFrequencyHigh
	}
	if videosPerWeek >= float64(p.mediumFrequencyPerWeek) {
		return model.PublishingFrequencyMedium
	}
	return model.PublishingFrequencyLow
}

// ClassifyContentStrategy labels a channel ViralDependent when the top
// slice of its recent videos carries at least the configured share of
// total views.
func (p *PublishingPatternClassifier) ClassifyContentStrategy(recentVideos []*model.Video) model.ContentStrategy {
	if len(recentVideos) == 0 {
		return model.ContentStrategyStable
	}

	var totalViews int64
	for _, v := range recentVideos {
		totalViews += v.ViewCount
	}
	if totalViews == 0 {
		return model.ContentStrategyStable
	}

	topCount := int(math.Ceil(float64(len(recentVideos)) * float64(p.topPercent) / 100.0))
	if topCount < 1 {
		topCount = 1
	}

	byViews := make([]*model.Video, len(recentVideos))
	copy(byViews, recentVideos)
	sort.Slice(byViews, func(i, j int) bool {
		return byViews[i].ViewCount > byViews[j].ViewCount
	})

	var topViews int64
	for _, v := range byViews[:topCount] {
		topViews += v.ViewCount
	}

	topSharePercent := float64(topViews) / float64(totalViews) * 100
	if topSharePercent >= float64(p.shareThreshold) {
		return model.ContentStrategyViralDependent
	}
	return model.ContentStrategyStable
}
