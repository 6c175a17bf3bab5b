// Package youtube wraps the YouTube Data API v3 behind the quota budget
// and the call pacer.
package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/internal/service/quota"
	"github.com/kent15/youtube-analytics-platform/pkg/logger"
)

const (
	// maxPlaylistPageSize is the platform's single-page maximum for
	// playlistItems.list.
	maxPlaylistPageSize = 50

	// shortVideoMaxSeconds is the duration at or below which a video is
	// treated as short-form and excluded from analysis.
	shortVideoMaxSeconds = 60
)

// Client wraps the YouTube Data API v3 client. Every remote call reserves
// quota units before acquiring a pacing permit; a rejected reservation
// means the call is never issued.
type Client struct {
	service *youtube.Service
	budget  *quota.Budget
	pacer   *Pacer
}

// NewClient creates a new YouTube API client.
func NewClient(ctx context.Context, apiKey string, budget *quota.Budget, pacer *Pacer) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service: service,
		budget:  budget,
		pacer:   pacer,
	}, nil
}

// FetchChannel retrieves a channel's current public statistics. A channel
// identifier that resolves to zero remote records yields a NotFoundError.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	if err := c.admit(ctx, 1); err != nil {
		return nil, err
	}

	logger.Log.Info("fetching channel info", zap.String("channel_id", channelID))

	response, err := c.service.Channels.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list %q: %w", channelID, err)
	}

	if len(response.Items) == 0 {
		return nil, &model.NotFoundError{Resource: "channel", ID: channelID}
	}

	item := response.Items[0]
	uploadsPlaylistID := ""
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		uploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}

	var subscriberCount, viewCount, videoCount int64
	if item.Statistics != nil {
		subscriberCount = int64(item.Statistics.SubscriberCount)
		viewCount = int64(item.Statistics.ViewCount)
		videoCount = int64(item.Statistics.VideoCount)
	}

	title := ""
	if item.Snippet != nil {
		title = item.Snippet.Title
	}

	return model.NewChannel(item.Id, title, subscriberCount, viewCount, videoCount, uploadsPlaylistID, time.Now().UTC())
}

// FetchRecentVideos retrieves full statistics for the most recent uploads
// of a channel's upload playlist, bounded to one playlist page. Short-form
// entries (duration <= 60s) are excluded. Callers must not assume any
// particular ordering of the result.
func (c *Client) FetchRecentVideos(ctx context.Context, uploadsPlaylistID string) ([]*model.Video, error) {
	if err := c.admit(ctx, 1); err != nil {
		return nil, err
	}

	logger.Log.Info("fetching playlist items", zap.String("playlist_id", uploadsPlaylistID))

	playlistResponse, err := c.service.PlaylistItems.
		List([]string{"contentDetails"}).
		PlaylistId(uploadsPlaylistID).
		MaxResults(maxPlaylistPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("playlistItems.list %q: %w", uploadsPlaylistID, err)
	}

	videoIDs := make([]string, 0, len(playlistResponse.Items))
	for _, item := range playlistResponse.Items {
		if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}
	}

	if len(videoIDs) == 0 {
		return nil, nil
	}

	if err := c.admit(ctx, 1); err != nil {
		return nil, err
	}

	logger.Log.Info("fetching video details", zap.Int("count", len(videoIDs)))

	videoResponse, err := c.service.Videos.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list: %w", err)
	}

	videos := make([]*model.Video, 0, len(videoResponse.Items))
	for _, item := range videoResponse.Items {
		duration := ""
		if item.ContentDetails != nil {
			duration = item.ContentDetails.Duration
		}
		if isShortVideo(duration) {
			continue
		}

		video, err := mapVideo(item)
		if err != nil {
			logger.Log.Warn("skipping malformed video item",
				zap.String("video_id", item.Id),
				zap.Error(err),
			)
			continue
		}
		videos = append(videos, video)
	}

	return videos, nil
}

// admit reserves quota units and then waits for a pacing permit.
func (c *Client) admit(ctx context.Context, units int) error {
	if err := c.budget.Reserve(units); err != nil {
		return err
	}
	return c.pacer.Acquire(ctx)
}

func mapVideo(item *youtube.Video) (*model.Video, error) {
	var publishedAt time.Time
	var channelID, title string
	if item.Snippet != nil {
		channelID = item.Snippet.ChannelId
		title = item.Snippet.Title
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			publishedAt = t
		} else {
			publishedAt = time.Now().UTC()
		}
	}

	var viewCount, likeCount, commentCount int64
	if item.Statistics != nil {
		viewCount = int64(item.Statistics.ViewCount)
		likeCount = int64(item.Statistics.LikeCount)
		commentCount = int64(item.Statistics.CommentCount)
	}

	return model.NewVideo(item.Id, channelID, title, publishedAt, viewCount, likeCount, commentCount)
}

// isShortVideo reports whether an ISO 8601 duration is at or below the
// short-form threshold. A duration that fails to parse is treated as not
// short so that parse errors never silently drop a video.
func isShortVideo(isoDuration string) bool {
	if isoDuration == "" {
		return false
	}

	seconds, err := ParseVideoDuration(isoDuration)
	if err != nil {
		return false
	}

	return seconds <= shortVideoMaxSeconds
}

// ParseVideoDuration converts an ISO 8601 duration to seconds.
// Example: "PT4M13S" -> 253 seconds
func ParseVideoDuration(duration string) (int, error) {
	if !strings.HasPrefix(duration, "PT") {
		return 0, fmt.Errorf("invalid duration format: %s", duration)
	}

	// Remove PT prefix
	duration = strings.TrimPrefix(duration, "PT")

	var hours, minutes, seconds int

	// Parse hours
	if hIdx := strings.Index(duration, "H"); hIdx != -1 {
		h, err := strconv.Atoi(duration[:hIdx])
		if err != nil {
			return 0, err
		}
		hours = h
		duration = duration[hIdx+1:]
	}

	// Parse minutes
	if mIdx := strings.Index(duration, "M"); mIdx != -1 {
		m, err := strconv.Atoi(duration[:mIdx])
		if err != nil {
			return 0, err
		}
		minutes = m
		duration = duration[mIdx+1:]
	}

	// Parse seconds
	if sIdx := strings.Index(duration, "S"); sIdx != -1 {
		s, err := strconv.Atoi(duration[:sIdx])
		if err != nil {
			return 0, err
		}
		seconds = s
	}

	return hours*3600 + minutes*60 + seconds, nil
}
