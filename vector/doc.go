// Package vector provides Vector, a 3D Euclidean vector generic over its
// floating point component type. It includes:
//   - construction and conversion (tuple, array, polar coordinates)
//   - component-wise arithmetic with vectors and scalars, plus in-place forms
//   - geometric queries (dot/cross product, length, distance, reflection)
//   - normalization, length limiting, heading and rotation math
//   - BLOB/JSON encoding and generated per-scalar cast methods
//
// Vector is a plain value: methods with value receivers never mutate the
// caller's copy, pointer receiver methods mutate only the receiver.
package vector

//go:generate go run ../internal/castgen -o cast_gen.go
