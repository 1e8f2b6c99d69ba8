package eval

import (
	"sort"

	"github.com/zeusync/vecmath/pkg/vec3"
)

// Kind tells which field of a Result holds the value.
type Kind uint8

const (
	KindVector Kind = iota
	KindScalar
)

func (k Kind) String() string {
	if k == KindScalar {
		return "scalar"
	}
	return "vector"
}

type operand uint8

const (
	needA operand = 1 << iota
	needB
	needC
	needS
)

type operands struct {
	a, b, c vec3.Vec3
	s       float32
}

type op struct {
	needs  operand
	vector func(in operands) vec3.Vec3
	scalar func(in operands) float32
}

func (o op) kind() Kind {
	if o.scalar != nil {
		return KindScalar
	}
	return KindVector
}

func vectorOp(needs operand, fn func(in operands) vec3.Vec3) op {
	return op{needs: needs, vector: fn}
}

func scalarOp(needs operand, fn func(in operands) float32) op {
	return op{needs: needs, scalar: fn}
}

// In-place forms are evaluated on a copy of a so scenarios stay independent.
var registry = map[string]op{
	"add":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Add(in.b) }),
	"sub":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Sub(in.b) }),
	"mul":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Mul(in.b) }),
	"div":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Div(in.b) }),
	"add_scalar": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return in.a.AddScalar(in.s) }),
	"sub_scalar": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return in.a.SubScalar(in.s) }),
	"mul_scalar": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return in.a.MulScalar(in.s) }),
	"div_scalar": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return in.a.DivScalar(in.s) }),
	"scalar_add": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return vec3.ScalarAdd(in.s, in.a) }),
	"scalar_sub": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return vec3.ScalarSub(in.s, in.a) }),
	"scalar_mul": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return vec3.ScalarMul(in.s, in.a) }),
	"scalar_div": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return vec3.ScalarDiv(in.s, in.a) }),

	"add_assign":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { in.a.AddAssign(in.b); return in.a }),
	"sub_assign":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { in.a.SubAssign(in.b); return in.a }),
	"mul_assign":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { in.a.MulAssign(in.b); return in.a }),
	"div_assign":        vectorOp(needA|needB, func(in operands) vec3.Vec3 { in.a.DivAssign(in.b); return in.a }),
	"add_scalar_assign": vectorOp(needA|needS, func(in operands) vec3.Vec3 { in.a.AddScalarAssign(in.s); return in.a }),
	"sub_scalar_assign": vectorOp(needA|needS, func(in operands) vec3.Vec3 { in.a.SubScalarAssign(in.s); return in.a }),
	"mul_scalar_assign": vectorOp(needA|needS, func(in operands) vec3.Vec3 { in.a.MulScalarAssign(in.s); return in.a }),
	"div_scalar_assign": vectorOp(needA|needS, func(in operands) vec3.Vec3 { in.a.DivScalarAssign(in.s); return in.a }),

	"neg":       vectorOp(needA, func(in operands) vec3.Vec3 { return in.a.Neg() }),
	"normalize": vectorOp(needA, func(in operands) vec3.Vec3 { return in.a.Normalize() }),
	"scale":     vectorOp(needA|needS, func(in operands) vec3.Vec3 { return in.a.Scale(in.s) }),
	"cross":     vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Cross(in.b) }),
	"min":       vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Min(in.b) }),
	"max":       vectorOp(needA|needB, func(in operands) vec3.Vec3 { return in.a.Max(in.b) }),
	"clamp":     vectorOp(needA|needB|needC, func(in operands) vec3.Vec3 { return in.a.Clamp(in.b, in.c) }),
	"flatten":   vectorOp(needA, func(in operands) vec3.Vec3 { return in.a.Flatten() }),
	"rotate_2d": vectorOp(needA|needS, func(in operands) vec3.Vec3 { return in.a.Rotate2D(in.s) }),

	"dot":          scalarOp(needA|needB, func(in operands) float32 { return in.a.Dot(in.b) }),
	"dot_2d":       scalarOp(needA|needB, func(in operands) float32 { return in.a.Dot2D(in.b) }),
	"magnitude":    scalarOp(needA, func(in operands) float32 { return in.a.Magnitude() }),
	"magnitude_2d": scalarOp(needA, func(in operands) float32 { return in.a.Magnitude2D() }),
	"angle_2d":     scalarOp(needA|needB, func(in operands) float32 { return in.a.Angle2D(in.b) }),
	"angle_tau_2d": scalarOp(needA|needB, func(in operands) float32 { return in.a.AngleTau2D(in.b) }),
	"dist":         scalarOp(needA|needB, func(in operands) float32 { return in.a.Dist(in.b) }),
	"dist_2d":      scalarOp(needA|needB, func(in operands) float32 { return in.a.Dist2D(in.b) }),
}

// Ops returns the supported operation names in sorted order.
func Ops() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
