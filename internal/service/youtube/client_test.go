package youtube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kent15/youtube-analytics-platform/internal/model"
	"github.com/kent15/youtube-analytics-platform/internal/service/quota"
)

func TestParseVideoDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     int
		wantErr  bool
	}{
		{"minutes and seconds", "PT4M13S", 253, false},
		{"seconds only", "PT45S", 45, false},
		{"minutes only", "PT10M", 600, false},
		{"hours minutes seconds", "PT1H2M3S", 3723, false},
		{"exactly one minute", "PT1M", 60, false},
		{"zero seconds", "PT0S", 0, false},
		{"missing PT prefix", "4M13S", 0, true},
		{"empty string", "", 0, true},
		{"garbage hours", "PTxH", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVideoDuration(tt.duration)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchRejectedByQuotaNeverTouchesRemote(t *testing.T) {
	// The remote service is nil: if the rejected reservation did not
	// short-circuit before the API call, these would panic.
	budget := quota.NewBudget(2, 1)
	require.NoError(t, budget.Reserve(2))

	client := &Client{service: nil, budget: budget, pacer: NewPacer(1)}

	_, err := client.FetchChannel(context.Background(), "UCtest")
	require.Error(t, err)
	var quotaErr *model.QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 2, quotaErr.Used)
	assert.Equal(t, 2, quotaErr.Limit)

	_, err = client.FetchRecentVideos(context.Background(), "UUtest")
	require.Error(t, err)
	assert.ErrorAs(t, err, &quotaErr)

	// The rejections left the counter untouched.
	assert.Zero(t, budget.Remaining())
}

func TestIsShortVideo(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     bool
	}{
		{"30 second short", "PT30S", true},
		{"exactly 60 seconds is short", "PT1M", true},
		{"61 seconds is not short", "PT1M1S", false},
		{"regular video", "PT10M30S", false},
		{"empty duration is not short", "", false},
		// Parse failures default to inclusion, never silently drop.
		{"unparseable duration is not short", "garbage", false},
		{"partial parse failure is not short", "PTxM", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isShortVideo(tt.duration))
		})
	}
}
