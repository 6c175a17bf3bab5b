package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kent15/youtube-analytics-platform/internal/db"
	"github.com/kent15/youtube-analytics-platform/internal/model"
)

// VideoRepository defines operations for persisting video statistics.
type VideoRepository interface {
	// UpsertMany creates or replaces a batch of video records.
	UpsertMany(ctx context.Context, videos []*model.Video) error

	// GetAll retrieves all persisted videos.
	GetAll(ctx context.Context) ([]*model.Video, error)

	// GetByChannel retrieves all persisted videos for a channel.
	GetByChannel(ctx context.Context, channelID string) ([]*model.Video, error)
}

type videoRepository struct {
	pool *pgxpool.Pool
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(pool *pgxpool.Pool) VideoRepository {
	return &videoRepository{pool: pool}
}

const upsertVideoQuery = `
	INSERT INTO videos (video_id, channel_id, title, published_at, view_count, like_count, comment_count)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (video_id) DO UPDATE
	SET channel_id = EXCLUDED.channel_id,
	    title = EXCLUDED.title,
	    published_at = EXCLUDED.published_at,
	    view_count = EXCLUDED.view_count,
	    like_count = EXCLUDED.like_count,
	    comment_count = EXCLUDED.comment_count
`

func (r *videoRepository) UpsertMany(ctx context.Context, videos []*model.Video) error {
	if len(videos) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, v := range videos {
		batch.Queue(upsertVideoQuery,
			v.VideoID,
			v.ChannelID,
			v.Title,
			v.PublishedAt,
			v.ViewCount,
			v.LikeCount,
			v.CommentCount,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range videos {
		if _, err := results.Exec(); err != nil {
			return db.WrapError(err, "upsert videos")
		}
	}

	return nil
}

func (r *videoRepository) GetAll(ctx context.Context) ([]*model.Video, error) {
	query := `
		SELECT video_id, channel_id, title, published_at, view_count, like_count, comment_count
		FROM videos
		ORDER BY published_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.WrapError(err, "get all videos")
	}
	defer rows.Close()

	return scanVideos(rows)
}

func (r *videoRepository) GetByChannel(ctx context.Context, channelID string) ([]*model.Video, error) {
	query := `
		SELECT video_id, channel_id, title, published_at, view_count, like_count, comment_count
		FROM videos
		WHERE channel_id = $1
		ORDER BY published_at DESC
	`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, db.WrapError(err, "get videos by channel")
	}
	defer rows.Close()

	return scanVideos(rows)
}

// Helper function to scan multiple videos from query results
func scanVideos(rows pgx.Rows) ([]*model.Video, error) {
	var videos []*model.Video

	for rows.Next() {
		video := &model.Video{}
		err := rows.Scan(
			&video.VideoID,
			&video.ChannelID,
			&video.Title,
			&video.PublishedAt,
			&video.ViewCount,
			&video.LikeCount,
			&video.CommentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}

	return videos, nil
}
