package vec3

// Add returns v + o componentwise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// AddScalar returns v + s applied to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// ScalarAdd returns s + v applied to every component.
func ScalarAdd(s float32, v Vec3) Vec3 {
	return Vec3{X: s + v.X, Y: s + v.Y, Z: s + v.Z}
}

// AddAssign adds o to v in place.
func (v *Vec3) AddAssign(o Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// AddScalarAssign adds s to every component of v in place.
func (v *Vec3) AddScalarAssign(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
}

// Sub returns v - o componentwise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SubScalar returns v - s applied to every component.
func (v Vec3) SubScalar(s float32) Vec3 {
	return Vec3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// ScalarSub returns s - v applied to every component, so ScalarSub(3, v).X is
// 3 - v.X. It is not the same as v.SubScalar(3).
func ScalarSub(s float32, v Vec3) Vec3 {
	return Vec3{X: s - v.X, Y: s - v.Y, Z: s - v.Z}
}

// SubAssign subtracts o from v in place.
func (v *Vec3) SubAssign(o Vec3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// SubScalarAssign subtracts s from every component of v in place.
func (v *Vec3) SubScalarAssign(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// Mul returns the componentwise (Hadamard) product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// MulScalar returns v * s applied to every component.
func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// ScalarMul returns s * v applied to every component.
func ScalarMul(s float32, v Vec3) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// MulAssign multiplies v by o componentwise in place.
func (v *Vec3) MulAssign(o Vec3) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
}

// MulScalarAssign multiplies every component of v by s in place.
func (v *Vec3) MulScalarAssign(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div returns v / o componentwise. A zero component in o yields Inf or NaN.
func (v Vec3) Div(o Vec3) Vec3 {
	return Vec3{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// DivScalar returns v / s applied to every component.
func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// ScalarDiv returns s / v applied to every component.
func ScalarDiv(s float32, v Vec3) Vec3 {
	return Vec3{X: s / v.X, Y: s / v.Y, Z: s / v.Z}
}

// DivAssign divides v by o componentwise in place.
func (v *Vec3) DivAssign(o Vec3) {
	v.X /= o.X
	v.Y /= o.Y
	v.Z /= o.Z
}

// DivScalarAssign divides every component of v by s in place.
func (v *Vec3) DivScalarAssign(s float32) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Neg flips the sign of every component.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}
