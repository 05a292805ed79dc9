package engine

import (
	"database/sql"
	"math"
	"testing"

	"github.com/viant/vec3/vector"
)

func openWithFunctions(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenWithFunctions(":memory:")
	if err != nil {
		t.Fatalf("OpenWithFunctions(:memory:) failed: %v", err)
	}
	// A single connection keeps the in-memory database shared across queries.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func queryVector(t *testing.T, db *sql.DB, query string, args ...interface{}) vector.Vector[float64] {
	t.Helper()
	var blob []byte
	if err := db.QueryRow(query, args...).Scan(&blob); err != nil {
		t.Fatalf("%s failed: %v", query, err)
	}
	v, err := DecodeVector(blob)
	if err != nil {
		t.Fatalf("DecodeVector(%s) failed: %v", query, err)
	}
	return v
}

func queryFloat(t *testing.T, db *sql.DB, query string, args ...interface{}) float64 {
	t.Helper()
	var f float64
	if err := db.QueryRow(query, args...).Scan(&f); err != nil {
		t.Fatalf("%s failed: %v", query, err)
	}
	return f
}

func TestRegisterFunctionsIdempotent(t *testing.T) {
	if err := RegisterFunctions(); err != nil {
		t.Fatalf("RegisterFunctions failed: %v", err)
	}
	if err := RegisterFunctions(); err != nil {
		t.Fatalf("second RegisterFunctions failed: %v", err)
	}
}

func TestVec3Constructors(t *testing.T) {
	db := openWithFunctions(t)

	if got := queryVector(t, db, `SELECT vec3(1, 2.5, -3)`); got != vector.New(1.0, 2.5, -3.0) {
		t.Fatalf("vec3(1, 2.5, -3) = %v", got)
	}
	if got := queryFloat(t, db, `SELECT vec3_y(vec3(1, 2.5, -3))`); got != 2.5 {
		t.Fatalf("vec3_y = %v, want 2.5", got)
	}
	// 32-bit encodings are accepted as input.
	blob32 := vector.Encode(vector.New[float32](3, 4, 0))
	if got := queryFloat(t, db, `SELECT vec3_length(?)`, blob32); got != 5 {
		t.Fatalf("vec3_length(float32 blob) = %v, want 5", got)
	}
}

func TestVec3Geometry(t *testing.T) {
	db := openWithFunctions(t)

	x := vector.Encode(vector.New(1.0, 0.0, 0.0))
	y := vector.Encode(vector.New(0.0, 1.0, 0.0))

	if got := queryFloat(t, db, `SELECT vec3_dot(?, ?)`, x, y); got != 0 {
		t.Fatalf("vec3_dot(x, y) = %v, want 0", got)
	}
	if got := queryVector(t, db, `SELECT vec3_cross(?, ?)`, x, y); got != vector.New(0.0, 0.0, 1.0) {
		t.Fatalf("vec3_cross(x, y) = %v, want z", got)
	}
	if got := queryFloat(t, db, `SELECT vec3_angle(?, ?)`, x, y); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("vec3_angle(x, y) = %v, want π/2", got)
	}
	if got := queryFloat(t, db, `SELECT vec3_distance(vec3(0, 0, 0), vec3(3, 4, 12))`); got != 13 {
		t.Fatalf("vec3_distance = %v, want 13", got)
	}
	if got := queryVector(t, db, `SELECT vec3_normalize(vec3(0, 0, 0))`); !got.IsZero() {
		t.Fatalf("vec3_normalize(zero) = %v, want zero", got)
	}
	if got := queryVector(t, db, `SELECT vec3_lerp(vec3(1, 2, 3), vec3(2, 3, 4), 0.5)`); got != vector.New(1.5, 2.5, 3.5) {
		t.Fatalf("vec3_lerp = %v", got)
	}

	rotated := queryVector(t, db, `SELECT vec3_rotate(vec3(1, 0, 0), ?, vec3(0, 0, 1))`, math.Pi/2)
	if !rotated.IsClose(vector.New(0.0, 1.0, 0.0)) {
		t.Fatalf("vec3_rotate = %v, want close to y", rotated)
	}
	var closeFlag int64
	if err := db.QueryRow(`SELECT vec3_is_close(?, vec3(0, 1, 0))`, vector.Encode(rotated)).Scan(&closeFlag); err != nil {
		t.Fatalf("vec3_is_close failed: %v", err)
	}
	if closeFlag != 1 {
		t.Fatalf("vec3_is_close = %d, want 1", closeFlag)
	}
}

func TestVec3NullAndErrors(t *testing.T) {
	db := openWithFunctions(t)

	var out sql.NullFloat64
	if err := db.QueryRow(`SELECT vec3_length(NULL)`).Scan(&out); err != nil {
		t.Fatalf("vec3_length(NULL) failed: %v", err)
	}
	if out.Valid {
		t.Fatalf("vec3_length(NULL) = %v, want NULL", out.Float64)
	}
	if err := db.QueryRow(`SELECT vec3_length(X'0102')`).Scan(&out); err == nil {
		t.Fatalf("vec3_length(short blob) expected error")
	}
	if err := db.QueryRow(`SELECT vec3_length('abc')`).Scan(&out); err == nil {
		t.Fatalf("vec3_length(text) expected error")
	}
}

func TestSQLOrderByDistance(t *testing.T) {
	db := openWithFunctions(t)

	if _, err := db.Exec(`CREATE TABLE p(id TEXT, pos BLOB)`); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO p(id, pos) VALUES
		('far', vec3(10, 0, 0)),
		('near', vec3(1, 0, 0)),
		('mid', vec3(0, 5, 0))`); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	rows, err := db.Query(`SELECT id FROM p ORDER BY vec3_distance(pos, vec3(0, 0, 0))`)
	if err != nil {
		t.Fatalf("ORDER BY vec3_distance failed: %v", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err: %v", err)
	}
	if len(ids) != 3 || ids[0] != "near" || ids[1] != "mid" || ids[2] != "far" {
		t.Fatalf("ORDER BY vec3_distance returned %v, want [near mid far]", ids)
	}
}
