package tree

import "math"

// Node is a cover-tree node. Its children cover points within base^level of
// its own point.
type Node struct {
	level          int32
	baseLevel      float32
	point          *Point
	children       []Node
	radius         float32
	radiusComputed uint64
}

// NewNode constructs a node for point at level.
func NewNode(point *Point, level int32, base float32) Node {
	return Node{
		level:     level,
		baseLevel: float32(math.Pow(float64(base), float64(level))),
		point:     point,
	}
}
