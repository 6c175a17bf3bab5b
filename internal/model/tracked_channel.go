package model

import "strings"

// TrackedChannel is a channel enrolled in the daily snapshot batch.
type TrackedChannel struct {
	ChannelID string `json:"channel_id"`
	Label     string `json:"label"`
}

// NewTrackedChannel validates and constructs a TrackedChannel.
func NewTrackedChannel(channelID, label string) (*TrackedChannel, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, &ValidationError{Field: "channelId", Message: "must not be empty"}
	}
	return &TrackedChannel{ChannelID: channelID, Label: label}, nil
}
