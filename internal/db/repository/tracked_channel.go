package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kent15/youtube-analytics-platform/internal/db"
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// TrackedChannelRepository is the registry of channels enrolled in the
// daily snapshot batch. Every mutation is immediately durable.
type TrackedChannelRepository interface {
	// List retrieves all tracked channels.
	List(ctx context.Context) ([]*model.TrackedChannel, error)

	// Add enrolls a channel. Adding an already-tracked channel is a no-op.
	Add(ctx context.Context, entry *model.TrackedChannel) error

	// Remove unenrolls a channel and reports whether it was tracked.
	Remove(ctx context.Context, channelID string) (bool, error)

	// IsTracked reports whether a channel is enrolled.
	IsTracked(ctx context.Context, channelID string) (bool, error)
}

type trackedChannelRepository struct {
	pool *pgxpool.Pool
}

// NewTrackedChannelRepository creates a new TrackedChannelRepository.
func NewTrackedChannelRepository(pool *pgxpool.Pool) TrackedChannelRepository {
	return &trackedChannelRepository{pool: pool}
}

func (r *trackedChannelRepository) List(ctx context.Context) ([]*model.TrackedChannel, error) {
	query := `
		SELECT channel_id, label
		FROM tracked_channels
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.WrapError(err, "list tracked channels")
	}
	defer rows.Close()

	var entries []*model.TrackedChannel
	for rows.Next() {
		entry := &model.TrackedChannel{}
		if err := rows.Scan(&entry.ChannelID, &entry.Label); err != nil {
			return nil, fmt.Errorf("scan tracked channel: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracked channels: %w", err)
	}

	return entries, nil
}

func (r *trackedChannelRepository) Add(ctx context.Context, entry *model.TrackedChannel) error {
	query := `
		INSERT INTO tracked_channels (channel_id, label)
		VALUES ($1, $2)
		ON CONFLICT (channel_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, entry.ChannelID, entry.Label)
	if err != nil {
		return db.WrapError(err, "add tracked channel")
	}

	return nil
}

func (r *trackedChannelRepository) Remove(ctx context.Context, channelID string) (bool, error) {
	query := `DELETE FROM tracked_channels WHERE channel_id = $1`

	result, err := r.pool.Exec(ctx, query, channelID)
	if err != nil {
		return false, db.WrapError(err, "remove tracked channel")
	}

	return result.RowsAffected() > 0, nil
}

func (r *trackedChannelRepository) IsTracked(ctx context.Context, channelID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tracked_channels WHERE channel_id = $1)`

	var tracked bool
	if err := r.pool.QueryRow(ctx, query, channelID).Scan(&tracked); err != nil {
		return false, db.WrapError(err, "check tracked channel")
	}

	return tracked, nil
}
