// Package testutil provides a disposable PostgreSQL instance for
// repository integration tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDatabase = "youtube_analytics_test"
	testUser     = "test"
	testPassword = "test"
)

const schema = `
CREATE TABLE IF NOT EXISTS channels (
	channel_id          TEXT PRIMARY KEY,
	channel_name        TEXT NOT NULL DEFAULT '',
	subscriber_count    BIGINT NOT NULL DEFAULT 0,
	total_view_count    BIGINT NOT NULL DEFAULT 0,
	video_count         BIGINT NOT NULL DEFAULT 0,
	uploads_playlist_id TEXT NOT NULL DEFAULT '',
	retrieved_at        TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS videos (
	video_id      TEXT PRIMARY KEY,
	channel_id    TEXT NOT NULL,
	title         TEXT NOT NULL DEFAULT '',
	published_at  TIMESTAMPTZ NOT NULL,
	view_count    BIGINT NOT NULL DEFAULT 0,
	like_count    BIGINT NOT NULL DEFAULT 0,
	comment_count BIGINT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_videos_channel_id ON videos (channel_id);
CREATE INDEX IF NOT EXISTS idx_videos_published_at ON videos (published_at);

CREATE TABLE IF NOT EXISTS channel_snapshots (
	channel_id       TEXT NOT NULL,
	subscriber_count BIGINT NOT NULL DEFAULT 0,
	total_view_count BIGINT NOT NULL DEFAULT 0,
	recorded_at      DATE NOT NULL,
	PRIMARY KEY (channel_id, recorded_at)
);

CREATE TABLE IF NOT EXISTS tracked_channels (
	channel_id TEXT PRIMARY KEY,
	label      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// TestDatabase represents a test database instance.
type TestDatabase struct {
	Pool      *pgxpool.Pool
	Container *postgres.PostgresContainer
	ConnStr   string
}

// SetupTestDatabase creates a PostgreSQL container, applies the schema, and
// returns a connection pool.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, schema)
	require.NoError(t, err)

	return &TestDatabase{
		Pool:      pool,
		Container: pgContainer,
		ConnStr:   connStr,
	}
}

// Cleanup closes the pool and terminates the container.
func (td *TestDatabase) Cleanup(t *testing.T) {
	td.Pool.Close()
	if err := td.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// TruncateTables clears all tables between test cases.
func (td *TestDatabase) TruncateTables(t *testing.T) {
	_, err := td.Pool.Exec(context.Background(),
		`TRUNCATE channels, videos, channel_snapshots, tracked_channels`)
	require.NoError(t, err)
}
