// Package vec3 provides a single-precision 3D vector value type.
//
// Every operation is a pure function of its inputs. Operations suffixed with
// 2D read only the X and Y components.
package vec3

import (
	"strconv"

	"github.com/chewxy/math32"
)

const (
	Pi  = float32(math32.Pi)
	Tau = 2 * Pi
)

// Vec3 is a point or direction in 3D space. The zero value is (0, 0, 0).
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// New builds a vector from three components. NaN and Inf are accepted as is.
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero returns (0, 0, 0).
func Zero() Vec3 {
	return Vec3{}
}

// String formats v as (x, y, z).
func (v Vec3) String() string {
	buf := make([]byte, 0, 48)
	buf = append(buf, '(')
	buf = strconv.AppendFloat(buf, float64(v.X), 'g', -1, 32)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, float64(v.Y), 'g', -1, 32)
	buf = append(buf, ", "...)
	buf = strconv.AppendFloat(buf, float64(v.Z), 'g', -1, 32)
	buf = append(buf, ')')
	return string(buf)
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps &&
		math32.Abs(v.Y-o.Y) <= eps &&
		math32.Abs(v.Z-o.Z) <= eps
}
