// Package model contains the domain entities and result types for the
// YouTube channel analytics platform.
package model

import (
	"strings"
	"time"
)

// Channel is a point-in-time view of a YouTube channel's public statistics.
// A fresh instance replaces any prior one on every fetch; instances are
// never mutated after construction.
type Channel struct {
	ChannelID         string    `json:"channel_id"`
	ChannelName       string    `json:"channel_name"`
	SubscriberCount   int64     `json:"subscriber_count"`
	TotalViewCount    int64     `json:"total_view_count"`
	VideoCount        int64     `json:"video_count"`
	UploadsPlaylistID string    `json:"uploads_playlist_id"`
	RetrievedAt       time.Time `json:"retrieved_at"`
}

// NewChannel validates and constructs a Channel.
func NewChannel(channelID, channelName string, subscriberCount, totalViewCount, videoCount int64, uploadsPlaylistID string, retrievedAt time.Time) (*Channel, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, &ValidationError{Field: "channelId", Message: "must not be empty"}
	}
	if subscriberCount < 0 {
		return nil, &ValidationError{Field: "subscriberCount", Message: "must not be negative"}
	}
	if totalViewCount < 0 {
		return nil, &ValidationError{Field: "totalViewCount", Message: "must not be negative"}
	}
	if videoCount < 0 {
		return nil, &ValidationError{Field: "videoCount", Message: "must not be negative"}
	}

	return &Channel{
		ChannelID:         channelID,
		ChannelName:       channelName,
		SubscriberCount:   subscriberCount,
		TotalViewCount:    totalViewCount,
		VideoCount:        videoCount,
		UploadsPlaylistID: uploadsPlaylistID,
		RetrievedAt:       retrievedAt,
	}, nil
}
