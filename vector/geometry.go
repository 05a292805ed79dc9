package vector

import "github.com/viant/vec3/scalar"

// Dot returns the dot product of v and o.
func (v Vector[F]) Dot(o Vector[F]) F {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vector[F]) Cross(o Vector[F]) Vector[F] {
	return Vector[F]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared length of v. Prefer it over Length for
// comparisons since it avoids the square root.
func (v Vector[F]) LengthSquared() F { return v.Dot(v) }

// Length returns the Euclidean length of v.
func (v Vector[F]) Length() F { return scalar.Sqrt(v.LengthSquared()) }

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vector[F]) DistanceSquared(o Vector[F]) F { return v.Sub(o).LengthSquared() }

// Distance returns the Euclidean distance between v and o.
func (v Vector[F]) Distance(o Vector[F]) F { return v.Sub(o).Length() }

// Reflect mirrors v on a surface with the given normal: v - 2(v·n)n.
// The normal is expected to be unit length; it is not normalized here.
func (v Vector[F]) Reflect(normal Vector[F]) Vector[F] {
	return v.Sub(normal.MulScalar(v.Dot(normal) * 2))
}

// IsClose reports whether v approximates reference. The tolerance is relative
// to the magnitude of reference: |v - reference|² <= |reference|² * epsilon.
// The comparison is not symmetric when the two magnitudes differ.
func (v Vector[F]) IsClose(reference Vector[F]) bool {
	num := v.Sub(reference).LengthSquared()
	den := reference.LengthSquared()
	return num <= den*scalar.Epsilon[F]()
}
