package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kent15/youtube-analytics-platform/internal/model"
)

func mustChannel(t *testing.T, totalViews, videoCount int64) *model.Channel {
	t.Helper()
	ch, err := model.NewChannel("UCgrowth", "Growth Test", 1000, totalViews, videoCount, "UUgrowth", time.Now().UTC())
	require.NoError(t, err)
	return ch
}

func videosWithViews(t *testing.T, views ...int64) []*model.Video {
	t.Helper()
	videos := make([]*model.Video, 0, len(views))
	for i, v := range views {
		video, err := model.NewVideo(
			"vid"+string(rune('a'+i)), "UCgrowth", "video",
			time.Now().UTC().AddDate(0, 0, -i), v, 0, 0,
		)
		require.NoError(t, err)
		videos = append(videos, video)
	}
	return videos
}

func TestGrowthClassifier(t *testing.T) {
	// Lifetime average 500 views per video, multiplier 1.5 for round bands:
	// >= 750 is Growing, < 333.3 is Declining.
	classifier := NewGrowthClassifier(1.5)
	channel := mustChannel(t, 50000, 100)

	tests := []struct {
		name        string
		recentViews []int64
		want        model.GrowthTrend
	}{
		{"recent average well above band", []int64{1000, 1000, 1000}, model.GrowthTrendGrowing},
		{"recent average exactly at band is growing", []int64{750}, model.GrowthTrendGrowing},
		{"recent average matches lifetime", []int64{500, 500}, model.GrowthTrendStable},
		{"recent average well below band", []int64{100, 100}, model.GrowthTrendDeclining},
		{"recent average just inside lower band", []int64{400}, model.GrowthTrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(channel, videosWithViews(t, tt.recentViews...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrowthClassifierNoRecentVideosIsDeclining(t *testing.T) {
	classifier := NewGrowthClassifier(1.2)
	channel := mustChannel(t, 50000, 100)

	assert.Equal(t, model.GrowthTrendDeclining, classifier.Classify(channel, nil))
}

func TestGrowthClassifierNoBaselineIsStable(t *testing.T) {
	classifier := NewGrowthClassifier(1.2)

	noVideos := mustChannel(t, 50000, 0)
	assert.Equal(t, model.GrowthTrendStable, classifier.Classify(noVideos, videosWithViews(t, 1000)))

	noViews := mustChannel(t, 0, 100)
	assert.Equal(t, model.GrowthTrendStable, classifier.Classify(noViews, videosWithViews(t, 1000)))
}

func TestGrowthClassifierInvalidMultiplierFallsBack(t *testing.T) {
	// Fallback multiplier 1.2: lifetime average 500 -> Growing at >= 600.
	classifier := NewGrowthClassifier(0)
	channel := mustChannel(t, 50000, 100)

	assert.Equal(t, model.GrowthTrendGrowing, classifier.Classify(channel, videosWithViews(t, 600)))
	assert.Equal(t, model.GrowthTrendStable, classifier.Classify(channel, videosWithViews(t, 599)))
}

func TestGrowthClassifierMonotonicInRecentAverage(t *testing.T) {
	classifier := NewGrowthClassifier(1.2)
	channel := mustChannel(t, 50000, 100)

	order := map[model.GrowthTrend]int{
		model.GrowthTrendDeclining: 0,
		model.GrowthTrendStable:    1,
		model.GrowthTrendGrowing:   2,
	}

	prev := -1
	for _, views := range []int64{0, 100, 400, 417, 500, 599, 600, 2000} {
		got := classifier.Classify(channel, videosWithViews(t, views))
		assert.GreaterOrEqual(t, order[got], prev, "label must not regress at %d views", views)
		prev = order[got]
	}
}
