package model

import (
	"strings"
	"time"
)

// ChannelSnapshot is a daily rollup of a channel's subscriber and view
// totals. One logical snapshot exists per (channel, calendar day); a later
// write on the same day overwrites the counts, not the day key.
type ChannelSnapshot struct {
	ChannelID       string    `json:"channel_id"`
	SubscriberCount int64     `json:"subscriber_count"`
	TotalViewCount  int64     `json:"total_view_count"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// NewChannelSnapshot validates and constructs a ChannelSnapshot. RecordedAt
// is truncated to day granularity in UTC.
func NewChannelSnapshot(channelID string, subscriberCount, totalViewCount int64, recordedAt time.Time) (*ChannelSnapshot, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, &ValidationError{Field: "channelId", Message: "must not be empty"}
	}
	if subscriberCount < 0 {
		return nil, &ValidationError{Field: "subscriberCount", Message: "must not be negative"}
	}
	if totalViewCount < 0 {
		return nil, &ValidationError{Field: "totalViewCount", Message: "must not be negative"}
	}

	return &ChannelSnapshot{
		ChannelID:       channelID,
		SubscriberCount: subscriberCount,
		TotalViewCount:  totalViewCount,
		RecordedAt:      recordedAt.UTC().Truncate(24 * time.Hour),
	}, nil
}
