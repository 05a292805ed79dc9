package store

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/viant/vec3/engine"
	"github.com/viant/vec3/vector"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := engine.OpenWithFunctions(":memory:")
	if err != nil {
		t.Fatalf("engine.OpenWithFunctions failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	s, err := NewSQLiteStore(context.Background(), db)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	return s
}

func TestSQLiteStore_PutGetRemove(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	ids, err := s.Put(ctx, []Point{
		{ID: "home", Label: "origin", Position: vector.Zero[float64]()},
		{Label: "anon", Position: vector.New(1.5, -2, 3)},
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "home" {
		t.Fatalf("Put ids = %v, want [home <uuid>]", ids)
	}
	if _, err := uuid.Parse(ids[1]); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", ids[1], err)
	}

	got, err := s.Get(ctx, ids[1])
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Label != "anon" || got.Position != vector.New(1.5, -2, 3) {
		t.Fatalf("Get = %+v, want anon at (1.5, -2, 3)", got)
	}

	if _, err := s.Put(ctx, []Point{{ID: "home", Label: "moved", Position: vector.One[float64]()}}); err != nil {
		t.Fatalf("Put (update) failed: %v", err)
	}
	got, err = s.Get(ctx, "home")
	if err != nil || got.Label != "moved" || got.Position != vector.One[float64]() {
		t.Fatalf("Get after update = %+v, %v", got, err)
	}

	if err := s.Remove(ctx, "home"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get(ctx, "home"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Remove err = %v, want ErrNotFound", err)
	}
	if err := s.Remove(ctx, ""); err == nil {
		t.Fatalf("Remove(\"\") expected error")
	}
}

func TestSQLiteStore_Proximity(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	_, err := s.Put(ctx, []Point{
		{ID: "a", Position: vector.New[float64](0, 0, 0)},
		{ID: "b", Position: vector.New[float64](3, 4, 0)},
		{ID: "c", Position: vector.New[float64](0, 0, 10)},
		{ID: "d", Position: vector.New[float64](1, 0, 0)},
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	near, err := s.Nearest(ctx, vector.Zero[float64](), 3)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	want := []string{"a", "d", "b"}
	if len(near) != len(want) {
		t.Fatalf("Nearest returned %d matches, want %d", len(near), len(want))
	}
	for i, m := range near {
		if m.ID != want[i] {
			t.Fatalf("Nearest[%d] = %s, want %s", i, m.ID, want[i])
		}
	}
	if near[2].Distance != 5 {
		t.Fatalf("Nearest distance to b = %v, want 5", near[2].Distance)
	}

	within, err := s.Within(ctx, vector.New[float64](0, 0, 9), 1)
	if err != nil {
		t.Fatalf("Within failed: %v", err)
	}
	if len(within) != 1 || within[0].ID != "c" || within[0].Position != vector.New[float64](0, 0, 10) {
		t.Fatalf("Within = %+v, want [c]", within)
	}

	if out, err := s.Nearest(ctx, vector.Zero[float64](), 0); err != nil || out != nil {
		t.Fatalf("Nearest(k=0) = %v, %v; want nil, nil", out, err)
	}
}

func TestSQLiteStore_NaNComponent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	_, err := s.Put(ctx, []Point{
		{ID: "n", Label: "undefined x", Position: vector.New(math.NaN(), 1, 2)},
		{ID: "a", Position: vector.New[float64](5, 0, 0)},
	})
	if err != nil {
		t.Fatalf("Put with NaN component failed: %v", err)
	}
	got, err := s.Get(ctx, "n")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !math.IsNaN(got.Position.X) || got.Position.Y != 1 || got.Position.Z != 2 || got.Label != "undefined x" {
		t.Fatalf("Get = %+v, want (NaN, 1, 2)", got)
	}

	near, err := s.Nearest(ctx, vector.Zero[float64](), 5)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if len(near) != 2 || near[0].ID != "a" || near[0].Distance != 5 {
		t.Fatalf("Nearest = %+v, want a first at distance 5", near)
	}
	if near[1].ID != "n" || !math.IsNaN(near[1].Distance) {
		t.Fatalf("Nearest[1] = %+v, want n with NaN distance", near[1])
	}

	within, err := s.Within(ctx, vector.Zero[float64](), 100)
	if err != nil {
		t.Fatalf("Within failed: %v", err)
	}
	if len(within) != 1 || within[0].ID != "a" {
		t.Fatalf("Within = %+v, want [a]", within)
	}
}
