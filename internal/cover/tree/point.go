package tree

import "github.com/viant/vec3/vector"

// Point is a position held by the cover tree.
type Point struct {
	index     int32
	Magnitude float32
	Position  vector.Vector[float32]
	coords    []float32
}

// HasValue reports whether the point has an associated value.
func (p *Point) HasValue() bool {
	return p != nil && p.index >= 0
}

// NewPoint constructs a point for the given position. The point carries no
// value until it is inserted.
func NewPoint(position vector.Vector[float32]) *Point {
	return &Point{index: -1, Position: position, coords: position.Slice()}
}

func (p *Point) slice() []float32 {
	if p.coords == nil {
		p.coords = p.Position.Slice()
	}
	return p.coords
}
