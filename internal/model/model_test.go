package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannel(t *testing.T) {
	now := time.Now()

	t.Run("valid channel", func(t *testing.T) {
		ch, err := NewChannel("UC123", "Test Channel", 1000, 50000, 100, "UU123", now)
		require.NoError(t, err)
		assert.Equal(t, "UC123", ch.ChannelID)
		assert.Equal(t, int64(50000), ch.TotalViewCount)
		assert.Equal(t, "UU123", ch.UploadsPlaylistID)
	})

	t.Run("empty channel id rejected", func(t *testing.T) {
		_, err := NewChannel("", "Test", 0, 0, 0, "", now)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "channelId", verr.Field)
	})

	t.Run("whitespace channel id rejected", func(t *testing.T) {
		_, err := NewChannel("   ", "Test", 0, 0, 0, "", now)
		assert.Error(t, err)
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		cases := []struct {
			name                  string
			subs, views, videoCnt int64
			field                 string
		}{
			{"negative subscribers", -1, 0, 0, "subscriberCount"},
			{"negative views", 0, -1, 0, "totalViewCount"},
			{"negative video count", 0, 0, -1, "videoCount"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewChannel("UC123", "Test", tc.subs, tc.views, tc.videoCnt, "", now)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tc.field, verr.Field)
			})
		}
	})

	t.Run("zero counts allowed", func(t *testing.T) {
		_, err := NewChannel("UC123", "Test", 0, 0, 0, "", now)
		assert.NoError(t, err)
	})
}

func TestNewVideo(t *testing.T) {
	now := time.Now()

	t.Run("valid video", func(t *testing.T) {
		v, err := NewVideo("v1", "UC123", "Title", now, 100, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, "v1", v.VideoID)
		assert.Equal(t, "https://i.ytimg.com/vi/v1/mqdefault.jpg", v.ThumbnailURL())
	})

	t.Run("empty video id rejected", func(t *testing.T) {
		_, err := NewVideo("", "UC123", "Title", now, 0, 0, 0)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "videoId", verr.Field)
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		_, err := NewVideo("v1", "UC123", "Title", now, -1, 0, 0)
		assert.Error(t, err)
		_, err = NewVideo("v1", "UC123", "Title", now, 0, -1, 0)
		assert.Error(t, err)
		_, err = NewVideo("v1", "UC123", "Title", now, 0, 0, -1)
		assert.Error(t, err)
	})
}

func TestNewChannelSnapshot(t *testing.T) {
	t.Run("recorded at truncated to day", func(t *testing.T) {
		at := time.Date(2025, 6, 15, 14, 32, 9, 0, time.UTC)
		s, err := NewChannelSnapshot("UC123", 1000, 50000, at)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), s.RecordedAt)
	})

	t.Run("empty channel id rejected", func(t *testing.T) {
		_, err := NewChannelSnapshot("", 0, 0, time.Now())
		assert.Error(t, err)
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		_, err := NewChannelSnapshot("UC123", -1, 0, time.Now())
		assert.Error(t, err)
		_, err = NewChannelSnapshot("UC123", 0, -1, time.Now())
		assert.Error(t, err)
	})
}

func TestNewTrackedChannel(t *testing.T) {
	tc, err := NewTrackedChannel("UC123", "my channel")
	require.NoError(t, err)
	assert.Equal(t, "my channel", tc.Label)

	_, err = NewTrackedChannel(" ", "label")
	assert.Error(t, err)
}
