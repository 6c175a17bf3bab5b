package model

import "time"

// VideoRankingItem is one ranked entry of a ranking result. Rank is
// 1-based in output order.
type VideoRankingItem struct {
	Rank         int       `json:"rank"`
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	ChannelID    string    `json:"channel_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	LikeRate     float64   `json:"like_rate"`
}

// VideoRankingResult is a ranked page of videos plus aggregates over the
// whole filtered set (not just the returned page).
type VideoRankingResult struct {
	TotalCount       int                `json:"total_count"`
	TotalViewCount   int64              `json:"total_view_count"`
	AverageViewCount int64              `json:"average_view_count"`
	AverageLikeRate  float64            `json:"average_like_rate"`
	Items            []VideoRankingItem `json:"items"`
}
