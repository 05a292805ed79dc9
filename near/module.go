package near

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/vec3/engine"
	"github.com/viant/vec3/index"
	"github.com/viant/vec3/vector"
	"modernc.org/sqlite/vtab"
)

// Module serves one named point set to every table created with it.
type Module struct {
	name   string
	mu     sync.RWMutex
	ids    []string
	points []vector.Vector[float32]
}

// modules is keyed by module name only.
var modules = struct {
	mu     sync.Mutex
	byName map[string]*Module
}{byName: make(map[string]*Module)}

// Register makes name available as a virtual table module backed by ids and
// points. The registry is process-wide, like the driver's module table: a
// name maps to one point set for every *sql.DB, and registering it again, on
// any db, replaces the set seen by tables created or connected afterwards.
// Use distinct names for distinct point sets.
func Register(db *sql.DB, name string, ids []string, points []vector.Vector[float32]) error {
	if len(ids) != len(points) {
		return fmt.Errorf("near: ids and points length mismatch: %d != %d", len(ids), len(points))
	}
	modules.mu.Lock()
	defer modules.mu.Unlock()
	mod, ok := modules.byName[name]
	if !ok {
		mod = &Module{name: name}
	}
	mod.set(ids, points)
	if err := vtab.RegisterModule(db, name, mod); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	modules.byName[name] = mod
	return nil
}

func (m *Module) set(ids []string, points []vector.Vector[float32]) {
	m.mu.Lock()
	m.ids = append([]string(nil), ids...)
	m.points = append([]vector.Vector[float32](nil), points...)
	m.mu.Unlock()
}

// Create declares the table and builds its index.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

// Connect attaches to an existing table and builds its index.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

func (m *Module) connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%s: need at least 3 args, got %d", m.name, len(args))
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(id TEXT, distance REAL)", args[2])); err != nil {
		return nil, err
	}
	opts := parseOptions(args[3:])
	idx := opts.newIndex()
	m.mu.RLock()
	err := idx.Build(m.ids, m.points)
	m.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build index: %w", m.name, err)
	}
	return &Table{module: m.name, k: opts.k, index: idx}, nil
}

// Table is one virtual table instance.
type Table struct {
	module string
	k      int
	index  index.Index
}

const (
	idxScan = iota
	idxMatch
)

// BestIndex pushes MATCH on the id column down to the index.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	info.IdxNum = idxScan
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		if c.Column == 0 && c.Op == vtab.OpMATCH {
			c.ArgIndex = 0
			c.Omit = true
			info.IdxNum = idxMatch
			break
		}
	}
	return nil
}

// Open allocates a cursor.
func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }

// Disconnect releases nothing; the index lives with the table.
func (t *Table) Disconnect() error { return nil }

// Destroy releases nothing.
func (t *Table) Destroy() error { return nil }

type row struct {
	id       string
	distance float64
}

// Cursor walks query results.
type Cursor struct {
	table *Table
	rows  []row
	pos   int
}

// Filter runs the kNN query. A scan without MATCH yields no rows.
func (c *Cursor) Filter(idxNum int, _ string, vals []vtab.Value) error {
	c.rows = nil
	c.pos = 0
	if idxNum != idxMatch || len(vals) == 0 || vals[0] == nil {
		return nil
	}
	q, err := decodeMatch(vals[0])
	if err != nil {
		return fmt.Errorf("%s: %w", c.table.module, err)
	}
	ids, dists, err := c.table.index.Query(q, c.table.k)
	if err != nil {
		return err
	}
	c.rows = make([]row, len(ids))
	for i := range ids {
		c.rows[i] = row{id: ids[i], distance: dists[i]}
	}
	return nil
}

func decodeMatch(v vtab.Value) (vector.Vector[float32], error) {
	switch val := v.(type) {
	case []byte:
		q, err := engine.DecodeVector(val)
		if err != nil {
			return vector.Vector[float32]{}, err
		}
		return vector.Convert[float32](q), nil
	case string:
		var q vector.Vector[float32]
		if err := q.UnmarshalJSON([]byte(val)); err != nil {
			return vector.Vector[float32]{}, fmt.Errorf("MATCH text must be a JSON [x,y,z] array: %w", err)
		}
		return q, nil
	default:
		return vector.Vector[float32]{}, fmt.Errorf("MATCH expects a vector BLOB or JSON text, got %T", v)
	}
}

// Next advances the cursor.
func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

// Eof reports the end of rows.
func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

// Column returns id (0) or distance (1) of the current row.
func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos >= len(c.rows) {
		return nil, fmt.Errorf("%s: Column out of range (pos=%d,len=%d)", c.table.module, c.pos, len(c.rows))
	}
	switch col {
	case 0:
		return c.rows[c.pos].id, nil
	case 1:
		return c.rows[c.pos].distance, nil
	}
	return nil, fmt.Errorf("%s: unsupported column %d", c.table.module, col)
}

// Rowid returns the 1-based rank of the current row.
func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

// Close releases the result set.
func (c *Cursor) Close() error {
	c.rows = nil
	c.pos = 0
	return nil
}

