package migrations

// This is a Go migration rather than SQL because the column types differ by
// database driver: TIMESTAMP for SQLite vs TIMESTAMPTZ for PostgreSQL vs
// TIMESTAMP(6) for MySQL, and MySQL cannot index unbounded TEXT columns so
// keys must be VARCHAR there.

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateVideos, downCreateVideos)
}

func createVideosStmts() []string {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE videos (
    id                TEXT PRIMARY KEY,
    youtube_id        TEXT NOT NULL,
    original_url      TEXT NOT NULL,
    canonical_url     TEXT NOT NULL,
    title             TEXT NOT NULL DEFAULT '',
    channel_title     TEXT NOT NULL DEFAULT '',
    description       TEXT NOT NULL DEFAULT '',
    thumbnail_url     TEXT NOT NULL DEFAULT '',
    published_at      TIMESTAMPTZ NOT NULL,
    timestamp_seconds INTEGER NOT NULL DEFAULT 0,
    playlist_id       TEXT NOT NULL DEFAULT '',
    playlist_index    INTEGER,
    created_at        TIMESTAMPTZ NOT NULL,
    updated_at        TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE videos (
    id                VARCHAR(36) PRIMARY KEY,
    youtube_id        VARCHAR(16) NOT NULL,
    original_url      TEXT NOT NULL,
    canonical_url     TEXT NOT NULL,
    title             TEXT NOT NULL,
    channel_title     TEXT NOT NULL,
    description       TEXT NOT NULL,
    thumbnail_url     TEXT NOT NULL,
    published_at      TIMESTAMP(6) NOT NULL,
    timestamp_seconds INTEGER NOT NULL DEFAULT 0,
    playlist_id       VARCHAR(255) NOT NULL DEFAULT '',
    playlist_index    INTEGER,
    created_at        TIMESTAMP(6) NOT NULL,
    updated_at        TIMESTAMP(6) NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE videos (
    id                TEXT PRIMARY KEY,
    youtube_id        TEXT NOT NULL,
    original_url      TEXT NOT NULL,
    canonical_url     TEXT NOT NULL,
    title             TEXT NOT NULL DEFAULT '',
    channel_title     TEXT NOT NULL DEFAULT '',
    description       TEXT NOT NULL DEFAULT '',
    thumbnail_url     TEXT NOT NULL DEFAULT '',
    published_at      TIMESTAMP NOT NULL,
    timestamp_seconds INTEGER NOT NULL DEFAULT 0,
    playlist_id       TEXT NOT NULL DEFAULT '',
    playlist_index    INTEGER,
    created_at        TIMESTAMP NOT NULL,
    updated_at        TIMESTAMP NOT NULL
)`
	}

	return []string{
		ddl,
		`CREATE UNIQUE INDEX idx_videos_youtube_id ON videos (youtube_id)`,
	}
}

func upCreateVideos(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range createVideosStmts() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func downCreateVideos(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS videos`)
	return err
}
