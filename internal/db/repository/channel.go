// Package repository provides data access for channels, videos, snapshots
// and the tracked-channel registry.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kent15/youtube-analytics-platform/internal/db"
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// ChannelRepository defines operations for persisting channel statistics.
type ChannelRepository interface {
	// Upsert creates a new channel record or replaces an existing one.
	Upsert(ctx context.Context, channel *model.Channel) error

	// Get retrieves a single channel by ID.
	Get(ctx context.Context, channelID string) (*model.Channel, error)
}

type channelRepository struct {
	pool *pgxpool.Pool
}

// NewChannelRepository creates a new ChannelRepository.
func NewChannelRepository(pool *pgxpool.Pool) ChannelRepository {
	return &channelRepository{pool: pool}
}

func (r *channelRepository) Upsert(ctx context.Context, channel *model.Channel) error {
	query := `
		INSERT INTO channels (channel_id, channel_name, subscriber_count, total_view_count, video_count, uploads_playlist_id, retrieved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (channel_id) DO UPDATE
		SET channel_name = EXCLUDED.channel_name,
		    subscriber_count = EXCLUDED.subscriber_count,
		    total_view_count = EXCLUDED.total_view_count,
		    video_count = EXCLUDED.video_count,
		    uploads_playlist_id = EXCLUDED.uploads_playlist_id,
		    retrieved_at = EXCLUDED.retrieved_at
	`

	_, err := r.pool.Exec(ctx, query,
		channel.ChannelID,
		channel.ChannelName,
		channel.SubscriberCount,
		channel.TotalViewCount,
		channel.VideoCount,
		channel.UploadsPlaylistID,
		channel.RetrievedAt,
	)
	if err != nil {
		return db.WrapError(err, "upsert channel")
	}

	return nil
}

func (r *channelRepository) Get(ctx context.Context, channelID string) (*model.Channel, error) {
	query := `
		SELECT channel_id, channel_name, subscriber_count, total_view_count, video_count, uploads_playlist_id, retrieved_at
		FROM channels
		WHERE channel_id = $1
	`

	channel := &model.Channel{}
	err := r.pool.QueryRow(ctx, query, channelID).Scan(
		&channel.ChannelID,
		&channel.ChannelName,
		&channel.SubscriberCount,
		&channel.TotalViewCount,
		&channel.VideoCount,
		&channel.UploadsPlaylistID,
		&channel.RetrievedAt,
	)
	if err != nil {
		return nil, db.WrapError(err, "get channel")
	}

	return channel, nil
}
