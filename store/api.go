package store

import (
	"context"
	"errors"

	"github.com/viant/vec3/vector"
)

// ErrNotFound is returned when no point has the requested ID.
var ErrNotFound = errors.New("store: point not found")

// Point is a labelled position.
type Point struct {
	// ID identifies the point. Put assigns a UUID when it is empty.
	ID string

	// Label is free-form text attached to the point.
	Label string

	Position vector.Vector[float64]
}

// Match is a point returned by a proximity query with its distance to the
// query position.
type Match struct {
	Point
	Distance float64
}

// Store is the point store API.
type Store interface {
	// Put inserts or replaces points and returns their IDs in input order.
	Put(ctx context.Context, points []Point) ([]string, error)

	// Get returns the point with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (Point, error)

	// Remove deletes the point with the given ID. Removing a missing ID is
	// not an error.
	Remove(ctx context.Context, id string) error

	// Nearest returns up to k points by ascending distance to query.
	Nearest(ctx context.Context, query vector.Vector[float64], k int) ([]Match, error)

	// Within returns every point at most radius away from query, nearest first.
	Within(ctx context.Context, query vector.Vector[float64], radius float64) ([]Match, error)
}
