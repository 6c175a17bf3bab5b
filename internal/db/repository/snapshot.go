package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kent15/youtube-analytics-platform/internal/db"
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// SnapshotRepository defines operations for daily channel snapshots.
type SnapshotRepository interface {
	// Upsert writes a snapshot; the conflict key is (channel, calendar day),
	// so a later write on the same day overwrites the counts.
	Upsert(ctx context.Context, snapshot *model.ChannelSnapshot) error

	// GetRecent retrieves the trailing snapshots for a channel over the
	// given number of days, ordered by recorded_at ascending.
	GetRecent(ctx context.Context, channelID string, days int) ([]*model.ChannelSnapshot, error)
}

type snapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepository{pool: pool}
}

func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *model.ChannelSnapshot) error {
	query := `
		INSERT INTO channel_snapshots (channel_id, subscriber_count, total_view_count, recorded_at)
		VALUES ($1, $2, $3, $4::date)
		ON CONFLICT (channel_id, recorded_at) DO UPDATE
		SET subscriber_count = EXCLUDED.subscriber_count,
		    total_view_count = EXCLUDED.total_view_count
	`

	_, err := r.pool.Exec(ctx, query,
		snapshot.ChannelID,
		snapshot.SubscriberCount,
		snapshot.TotalViewCount,
		snapshot.RecordedAt,
	)
	if err != nil {
		return db.WrapError(err, "upsert snapshot")
	}

	return nil
}

func (r *snapshotRepository) GetRecent(ctx context.Context, channelID string, days int) ([]*model.ChannelSnapshot, error) {
	query := `
		SELECT channel_id, subscriber_count, total_view_count, recorded_at
		FROM channel_snapshots
		WHERE channel_id = $1
		  AND recorded_at >= CURRENT_DATE - INTERVAL '1 day' * $2
		ORDER BY recorded_at ASC
	`

	rows, err := r.pool.Query(ctx, query, channelID, days)
	if err != nil {
		return nil, db.WrapError(err, "get recent snapshots")
	}
	defer rows.Close()

	var snapshots []*model.ChannelSnapshot
	for rows.Next() {
		snapshot := &model.ChannelSnapshot{}
		err := rows.Scan(
			&snapshot.ChannelID,
			&snapshot.SubscriberCount,
			&snapshot.TotalViewCount,
			&snapshot.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}

	return snapshots, nil
}
