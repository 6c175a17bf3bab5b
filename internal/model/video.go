package model

import (
	"strings"
	"time"
)

// Video is a point-in-time view of a YouTube video's public statistics.
// Re-fetching the same video produces a new instance that supersedes the
// old one by identity.
type Video struct {
	VideoID      string    `json:"video_id"`
	ChannelID    string    `json:"channel_id"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

// NewVideo validates and constructs a Video.
func NewVideo(videoID, channelID, title string, publishedAt time.Time, viewCount, likeCount, commentCount int64) (*Video, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, &ValidationError{Field: "videoId", Message: "must not be empty"}
	}
	if viewCount < 0 {
		return nil, &ValidationError{Field: "viewCount", Message: "must not be negative"}
	}
	if likeCount < 0 {
		return nil, &ValidationError{Field: "likeCount", Message: "must not be negative"}
	}
	if commentCount < 0 {
		return nil, &ValidationError{Field: "commentCount", Message: "must not be negative"}
	}

	return &Video{
		VideoID:      videoID,
		ChannelID:    channelID,
		Title:        title,
		PublishedAt:  publishedAt,
		ViewCount:    viewCount,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}, nil
}

// ThumbnailURL returns the medium-quality thumbnail URL for the video.
func (v *Video) ThumbnailURL() string {
	return "https://i.ytimg.com/vi/" + v.VideoID + "/mqdefault.jpg"
}
