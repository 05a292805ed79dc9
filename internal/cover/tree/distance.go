package tree

import "github.com/viant/vec/search"

// DistanceFunction enumerates supported distance metrics for the cover tree.
type DistanceFunction string

const (
	DistanceFunctionEuclidean DistanceFunction = "euclidean"
	DistanceFunctionCosine    DistanceFunction = "cosine"
)

// DistanceFunc computes the distance between two points.
type DistanceFunc func(p1, p2 *Point) float32

// Function resolves the callable distance implementation.
func (d DistanceFunction) Function() DistanceFunc {
	switch d {
	case DistanceFunctionEuclidean:
		return EuclideanDistance
	case DistanceFunctionCosine:
		return CosineDistance
	default:
		return nil
	}
}

// EuclideanDistance returns the straight-line distance between two points.
func EuclideanDistance(p1, p2 *Point) float32 {
	return search.Float32s(p1.slice()).EuclideanDistance(p2.slice())
}

// CosineDistance returns 1 minus the cosine of the angle between two
// positions taken as vectors from the origin.
func CosineDistance(p1, p2 *Point) float32 {
	m1 := p1.Magnitude
	if m1 == 0 {
		m1 = p1.Position.Length()
	}
	m2 := p2.Magnitude
	if m2 == 0 {
		m2 = p2.Position.Length()
	}
	return search.Float32s(p1.slice()).CosineDistanceWithMagnitude(p2.slice(), m1, m2)
}
