package engine

import "testing"

// TestOpenInMemory verifies that we can open an in-memory SQLite database
// using the modernc.org/sqlite driver and store an encoded vector.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t(id TEXT, pos BLOB)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(id, pos) VALUES ('a', zeroblob(24))"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	var blob []byte
	if err := db.QueryRow("SELECT pos FROM t WHERE id = 'a'").Scan(&blob); err != nil {
		t.Fatalf("SELECT failed: %v", err)
	}
	v, err := DecodeVector(blob)
	if err != nil {
		t.Fatalf("DecodeVector failed: %v", err)
	}
	if !v.IsZero() {
		t.Fatalf("DecodeVector(zeroblob) = %v, want zero", v)
	}
}
