package vec3

import "github.com/chewxy/math32"

// Min and Max follow IEEE-754 minNum/maxNum: when exactly one operand of a
// component is NaN the other one is selected, and NaN comes out only when both
// are NaN. The builtin min/max propagate NaN instead, so they are only used
// once both operands are known to be numbers.

// Min returns the componentwise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: minNum(v.X, o.X), Y: minNum(v.Y, o.Y), Z: minNum(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: maxNum(v.X, o.X), Y: maxNum(v.Y, o.Y), Z: maxNum(v.Z, o.Z)}
}

// Clamp limits every component of v to [lo, hi].
//
// Each component is first raised to lo and then lowered to hi, so when
// lo > hi for a component the result is hi. Callers are expected to pass
// lo <= hi. A NaN component of v is returned unchanged.
func (v Vec3) Clamp(lo, hi Vec3) Vec3 {
	return Vec3{
		X: clamp(v.X, lo.X, hi.X),
		Y: clamp(v.Y, lo.Y, hi.Y),
		Z: clamp(v.Z, lo.Z, hi.Z),
	}
}

func minNum(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return b
	case math32.IsNaN(b):
		return a
	}
	return min(a, b)
}

func maxNum(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return b
	case math32.IsNaN(b):
		return a
	}
	return max(a, b)
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}
