package vec3

import "github.com/chewxy/math32"

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Dot2D returns the dot product of v and o, ignoring Z.
func (v Vec3) Dot2D(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Magnitude2D returns the length of v, ignoring Z.
func (v Vec3) Magnitude2D() float32 {
	return math32.Sqrt(v.Dot2D(v))
}

// Normalize returns v scaled to unit length. A vector of magnitude exactly
// zero normalizes to the zero vector instead of NaN.
func (v Vec3) Normalize() Vec3 {
	size := v.Magnitude()
	if size == 0 {
		return Vec3{}
	}
	return v.DivScalar(size)
}

// Scale returns v with its length set to length. The zero vector stays zero
// for any length, including Inf and NaN.
func (v Vec3) Scale(length float32) Vec3 {
	n := v.Normalize()
	if n == (Vec3{}) {
		return n
	}
	return n.MulScalar(length)
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Flatten returns v with Z set to 0.
func (v Vec3) Flatten() Vec3 {
	return Vec3{X: v.X, Y: v.Y}
}

// Angle2D returns the angle between v and o in [0, π], ignoring Z.
//
// Both vectors must already be unit length. The dot product is clamped to
// [-1, 1] only to absorb rounding; inputs of other lengths give a defined but
// meaningless result.
func (v Vec3) Angle2D(o Vec3) float32 {
	d := v.Dot2D(o)
	if d < -1 {
		d = -1
	} else if d > 1 {
		d = 1
	}
	return math32.Acos(d)
}

// AngleTau2D returns the counter-clockwise angle from v to o in [0, 2π),
// ignoring Z.
func (v Vec3) AngleTau2D(o Vec3) float32 {
	angle := math32.Atan2(o.Y, o.X) - math32.Atan2(v.Y, v.X)
	if angle < 0 {
		angle += Tau
	}
	// atan2 of signed zeros can give exactly 2π, and a tiny negative angle
	// rounds up to 2π after the shift.
	if angle >= Tau {
		angle -= Tau
	}
	return angle
}

// Dist returns the distance between the tips of v and o.
func (v Vec3) Dist(o Vec3) float32 {
	return o.Sub(v).Magnitude()
}

// Dist2D returns the distance between the tips of v and o, ignoring Z.
func (v Vec3) Dist2D(o Vec3) float32 {
	return o.Sub(v).Magnitude2D()
}

// Rotate2D rotates v counter-clockwise by angle radians around the Z axis.
// Z is carried through unchanged.
func (v Vec3) Rotate2D(angle float32) Vec3 {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	return Vec3{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
		Z: v.Z,
	}
}
