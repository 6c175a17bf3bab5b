//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kent15/youtube-analytics-platform/internal/db"
	"github.com/kent15/youtube-analytics-platform/internal/db/testutil"
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

func TestChannelRepository(t *testing.T) {
	td := testutil.SetupTestDatabase(t)
	defer td.Cleanup(t)

	repo := NewChannelRepository(td.Pool)
	ctx := context.Background()

	t.Run("upsert then get", func(t *testing.T) {
		td.TruncateTables(t)

		retrievedAt := time.Now().UTC().Truncate(time.Second)
		channel, err := model.NewChannel("UC123", "Test Channel", 1000, 50000, 100, "UU123", retrievedAt)
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, channel))

		got, err := repo.Get(ctx, "UC123")
		require.NoError(t, err)
		assert.Equal(t, "Test Channel", got.ChannelName)
		assert.Equal(t, int64(50000), got.TotalViewCount)
		assert.Equal(t, "UU123", got.UploadsPlaylistID)
	})

	t.Run("upsert replaces prior counts", func(t *testing.T) {
		td.TruncateTables(t)

		first, _ := model.NewChannel("UC123", "Old Name", 10, 100, 1, "UU123", time.Now())
		require.NoError(t, repo.Upsert(ctx, first))

		second, _ := model.NewChannel("UC123", "New Name", 20, 200, 2, "UU123", time.Now())
		require.NoError(t, repo.Upsert(ctx, second))

		got, err := repo.Get(ctx, "UC123")
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.ChannelName)
		assert.Equal(t, int64(200), got.TotalViewCount)
	})

	t.Run("get missing channel returns not found", func(t *testing.T) {
		td.TruncateTables(t)

		_, err := repo.Get(ctx, "UC-missing")
		assert.True(t, db.IsNotFound(err))
	})
}

func TestVideoRepository(t *testing.T) {
	td := testutil.SetupTestDatabase(t)
	defer td.Cleanup(t)

	repo := NewVideoRepository(td.Pool)
	ctx := context.Background()

	newVideo := func(id, channelID string, views int64, age time.Duration) *model.Video {
		v, err := model.NewVideo(id, channelID, "title "+id, time.Now().Add(-age), views, views/10, views/100)
		require.NoError(t, err)
		return v
	}

	t.Run("upsert many and get by channel", func(t *testing.T) {
		td.TruncateTables(t)

		videos := []*model.Video{
			newVideo("v1", "UC1", 100, time.Hour),
			newVideo("v2", "UC1", 200, 2*time.Hour),
			newVideo("v3", "UC2", 300, 3*time.Hour),
		}
		require.NoError(t, repo.UpsertMany(ctx, videos))

		byChannel, err := repo.GetByChannel(ctx, "UC1")
		require.NoError(t, err)
		assert.Len(t, byChannel, 2)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("re-fetch supersedes by identity", func(t *testing.T) {
		td.TruncateTables(t)

		require.NoError(t, repo.UpsertMany(ctx, []*model.Video{newVideo("v1", "UC1", 100, time.Hour)}))
		require.NoError(t, repo.UpsertMany(ctx, []*model.Video{newVideo("v1", "UC1", 150, time.Hour)}))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(150), all[0].ViewCount)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		td.TruncateTables(t)
		require.NoError(t, repo.UpsertMany(ctx, nil))
	})
}

func TestSnapshotRepository(t *testing.T) {
	td := testutil.SetupTestDatabase(t)
	defer td.Cleanup(t)

	repo := NewSnapshotRepository(td.Pool)
	ctx := context.Background()

	t.Run("same-day upsert overwrites counts", func(t *testing.T) {
		td.TruncateTables(t)

		now := time.Now().UTC()
		first, err := model.NewChannelSnapshot("UC1", 100, 1000, now)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, first))

		second, err := model.NewChannelSnapshot("UC1", 110, 1100, now)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, second))

		snapshots, err := repo.GetRecent(ctx, "UC1", 7)
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, int64(110), snapshots[0].SubscriberCount)
		assert.Equal(t, int64(1100), snapshots[0].TotalViewCount)
	})

	t.Run("get recent is ascending and windowed", func(t *testing.T) {
		td.TruncateTables(t)

		now := time.Now().UTC()
		for _, daysAgo := range []int{120, 10, 5, 1} {
			s, err := model.NewChannelSnapshot("UC1", int64(daysAgo), int64(daysAgo*10), now.AddDate(0, 0, -daysAgo))
			require.NoError(t, err)
			require.NoError(t, repo.Upsert(ctx, s))
		}

		snapshots, err := repo.GetRecent(ctx, "UC1", 90)
		require.NoError(t, err)
		require.Len(t, snapshots, 3)
		for i := 1; i < len(snapshots); i++ {
			assert.True(t, snapshots[i].RecordedAt.After(snapshots[i-1].RecordedAt))
		}
	})
}

func TestTrackedChannelRepository(t *testing.T) {
	td := testutil.SetupTestDatabase(t)
	defer td.Cleanup(t)

	repo := NewTrackedChannelRepository(td.Pool)
	ctx := context.Background()

	t.Run("add list remove", func(t *testing.T) {
		td.TruncateTables(t)

		entry, err := model.NewTrackedChannel("UC1", "first")
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, entry))

		// Duplicate add is a no-op
		require.NoError(t, repo.Add(ctx, entry))

		tracked, err := repo.IsTracked(ctx, "UC1")
		require.NoError(t, err)
		assert.True(t, tracked)

		entries, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "first", entries[0].Label)

		removed, err := repo.Remove(ctx, "UC1")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Remove(ctx, "UC1")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}
