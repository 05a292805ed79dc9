package index

import "github.com/viant/vec3/vector"

// Index defines a nearest-neighbour index over 3D points.
type Index interface {
	// Build constructs the index from the given ids and points.
	// ids and points must have the same length.
	Build(ids []string, points []vector.Vector[float32]) error

	// Query returns up to k ids closest to query as parallel slices of ids and
	// distances, ordered by ascending distance. k <= 0 returns every point.
	Query(query vector.Vector[float32], k int) (ids []string, distances []float64, err error)

	// MarshalBinary serializes the index into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}
