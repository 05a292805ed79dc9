package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/viant/vec3/engine"
	"github.com/viant/vec3/vector"
)

// SQLiteStore is a Store backed by a SQLite database. Proximity queries are
// evaluated inside SQLite with vec3_distance.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore registers the vec3_* functions and ensures the points table
// exists. Functions only reach connections opened after registration, so db
// should come from engine.OpenWithFunctions or not have been used yet.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := engine.RegisterFunctions(); err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Put upserts points in one transaction.
func (s *SQLiteStore) Put(ctx context.Context, points []Point) ([]string, error) {
	if len(points) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points(id, label, x, y, z, position) VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET label = excluded.label, x = excluded.x, y = excluded.y, z = excluded.z, position = excluded.position`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(points))
	for _, p := range points {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		pos := p.Position
		if _, err := stmt.ExecContext(ctx, id, p.Label, pos.X, pos.Y, pos.Z, vector.Encode(pos)); err != nil {
			return nil, fmt.Errorf("store: failed to put %s: %w", id, err)
		}
		ids = append(ids, id)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get loads a point by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Point, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, label, position FROM points WHERE id = ?`, id)
	var p Point
	var blob []byte
	if err := row.Scan(&p.ID, &p.Label, &blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Point{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Point{}, err
	}
	pos, err := engine.DecodeVector(blob)
	if err != nil {
		return Point{}, err
	}
	p.Position = pos
	return p, nil
}

// Remove deletes a point by ID.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: Remove called with empty id")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM points WHERE id = ?`, id)
	return err
}

// Nearest returns up to k points ordered by distance to query. k<=0 returns
// nothing. Points whose distance is NaN (SQL NULL) sort last with a NaN
// Distance.
func (s *SQLiteStore) Nearest(ctx context.Context, query vector.Vector[float64], k int) ([]Match, error) {
	if k <= 0 {
		return nil, nil
	}
	return s.matches(ctx, `SELECT id, label, position, vec3_distance(position, ?) AS d
		FROM points ORDER BY d IS NULL, d, id LIMIT ?`, vector.Encode(query), k)
}

// Within returns points at most radius from query ordered by distance.
func (s *SQLiteStore) Within(ctx context.Context, query vector.Vector[float64], radius float64) ([]Match, error) {
	if radius < 0 {
		return nil, nil
	}
	q := vector.Encode(query)
	return s.matches(ctx, `SELECT id, label, position, vec3_distance(position, ?) AS d
		FROM points WHERE vec3_distance(position, ?) <= ? ORDER BY d, id`, q, q, radius)
}

func (s *SQLiteStore) matches(ctx context.Context, query string, args ...interface{}) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		var blob []byte
		var distance sql.NullFloat64
		if err := rows.Scan(&m.ID, &m.Label, &blob, &distance); err != nil {
			return nil, err
		}
		m.Distance = math.NaN()
		if distance.Valid {
			m.Distance = distance.Float64
		}
		if m.Position, err = engine.DecodeVector(blob); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Store = (*SQLiteStore)(nil)
