package model

import "time"

// GrowthTrend labels how a channel's recent view performance compares to
// its lifetime average.
type GrowthTrend string

const (
	GrowthTrendGrowing   GrowthTrend = "Growing"
	GrowthTrendStable    GrowthTrend = "Stable"
	GrowthTrendDeclining GrowthTrend = "Declining"
)

// PublishingFrequency labels a channel's recent publishing cadence.
type PublishingFrequency string

const (
	PublishingFrequencyHigh   PublishingFrequency = "High"
	PublishingFrequencyMedium PublishingFrequency = "Medium"
	PublishingFrequencyLow    PublishingFrequency = "Low"
)

// ContentStrategy labels whether a channel's views depend on a few viral
// videos or are spread evenly.
type ContentStrategy string

const (
	ContentStrategyViralDependent ContentStrategy = "ViralDependent"
	ContentStrategyStable         ContentStrategy = "Stable"
)

// ChannelInfo is the channel portion of an analysis result.
type ChannelInfo struct {
	ChannelID       string `json:"channel_id"`
	ChannelName     string `json:"channel_name"`
	SubscriberCount int64  `json:"subscriber_count"`
	TotalViewCount  int64  `json:"total_view_count"`
	VideoCount      int64  `json:"video_count"`
}

// VideoDetail is a single video entry in an analysis result.
type VideoDetail struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// SnapshotPoint is one point of the trailing snapshot series.
type SnapshotPoint struct {
	RecordedAt      time.Time `json:"recorded_at"`
	SubscriberCount int64     `json:"subscriber_count"`
	TotalViewCount  int64     `json:"total_view_count"`
}

// AnalysisResult is the full outcome of a channel analysis run. It is
// derived from Channel/Video/ChannelSnapshot data and cached as a JSON
// blob keyed by channel identity.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type AnalysisResult struct {
	Channel             ChannelInfo         `json:"channel"`
	RecentVideos        []VideoDetail       `json:"recent_videos"`
	RecentVideoCount    int                 `json:"recent_video_count"`
	AverageViewCount    float64             `json:"average_view_count"`
	GrowthTrend         GrowthTrend         `json:"growth_trend"`
	PublishingFrequency PublishingFrequency `json:"publishing_frequency"`
	ContentStrategy     ContentStrategy     `json:"content_strategy"`
	Snapshots           []SnapshotPoint     `json:"snapshots"`
}
