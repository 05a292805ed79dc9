package store

import (
	"context"
	"database/sql"
)

const pointsSchema = `
CREATE TABLE IF NOT EXISTS points (
    id TEXT PRIMARY KEY,
    label TEXT NOT NULL DEFAULT '',
    x REAL,
    y REAL,
    z REAL,
    position BLOB NOT NULL
);
`

// EnsureSchema creates the points table if it does not exist. The x, y and z
// columns mirror the encoded position for plain SQL filtering; SQLite stores a
// NaN component there as NULL, while position keeps the exact bits.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, pointsSchema)
	return err
}
