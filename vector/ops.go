package vector

// Add returns the component-wise sum v + o.
func (v Vector[F]) Add(o Vector[F]) Vector[F] {
	return Vector[F]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vector[F]) Sub(o Vector[F]) Vector[F] {
	return Vector[F]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns the component-wise product v * o.
func (v Vector[F]) Mul(o Vector[F]) Vector[F] {
	return Vector[F]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Div returns the component-wise quotient v / o. Zero components of o yield
// infinities or NaN.
func (v Vector[F]) Div(o Vector[F]) Vector[F] {
	return Vector[F]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// AddScalar adds s to every component.
func (v Vector[F]) AddScalar(s F) Vector[F] {
	return Vector[F]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubScalar subtracts s from every component.
func (v Vector[F]) SubScalar(s F) Vector[F] {
	return Vector[F]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// MulScalar scales every component by s.
func (v Vector[F]) MulScalar(s F) Vector[F] {
	return Vector[F]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar divides every component by s.
func (v Vector[F]) DivScalar(s F) Vector[F] {
	return Vector[F]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns -v.
func (v Vector[F]) Neg() Vector[F] {
	return Vector[F]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// AddAssign sets v to v + o.
func (v *Vector[F]) AddAssign(o Vector[F]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubAssign sets v to v - o.
func (v *Vector[F]) SubAssign(o Vector[F]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// MulAssign sets v to v * o.
func (v *Vector[F]) MulAssign(o Vector[F]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
}

// DivAssign sets v to v / o.
func (v *Vector[F]) DivAssign(o Vector[F]) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
}

// AddScalarAssign adds s to every component of v.
func (v *Vector[F]) AddScalarAssign(s F) {
	v.X += s
	v.Y += s
	v.Z += s
}

// SubScalarAssign subtracts s from every component of v.
func (v *Vector[F]) SubScalarAssign(s F) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// MulScalarAssign scales every component of v by s.
func (v *Vector[F]) MulScalarAssign(s F) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalarAssign divides every component of v by s.
func (v *Vector[F]) DivScalarAssign(s F) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}
