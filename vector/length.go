package vector

import "github.com/viant/vec3/scalar"

// SetLength rescales v to the given length. A zero vector is left unchanged.
func (v *Vector[F]) SetLength(length F) {
	lenSq := v.LengthSquared()
	if lenSq == 0 {
		return
	}
	v.MulScalarAssign(length * scalar.Recip(scalar.Sqrt(lenSq)))
}

// WithLength returns a copy of v rescaled to the given length.
func (v Vector[F]) WithLength(length F) Vector[F] {
	v.SetLength(length)
	return v
}

// SetLengthSquared rescales v by lengthSquared / |v|². A zero vector is left
// unchanged.
func (v *Vector[F]) SetLengthSquared(lengthSquared F) {
	lenSq := v.LengthSquared()
	if lenSq == 0 {
		return
	}
	v.MulScalarAssign(lengthSquared / lenSq)
}

// WithLengthSquared returns a copy of v rescaled with SetLengthSquared.
func (v Vector[F]) WithLengthSquared(lengthSquared F) Vector[F] {
	v.SetLengthSquared(lengthSquared)
	return v
}

// Limit shortens v to maxLength if it is longer. Shorter vectors are left
// unchanged.
func (v *Vector[F]) Limit(maxLength F) {
	lenSq := v.LengthSquared()
	if lenSq > maxLength*maxLength {
		v.MulScalarAssign(maxLength * scalar.Recip(scalar.Sqrt(lenSq)))
	}
}

// Limited returns a copy of v limited to maxLength.
func (v Vector[F]) Limited(maxLength F) Vector[F] {
	v.Limit(maxLength)
	return v
}

// Normalize scales v to unit length. Does nothing for the zero vector.
func (v *Vector[F]) Normalize() {
	v.SetLength(scalar.One[F]())
}

// Normalized returns a unit length copy of v, or the zero vector for zero.
func (v Vector[F]) Normalized() Vector[F] {
	v.Normalize()
	return v
}
