package mgl

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/vecmath/pkg/vec3"
)

const tolerance = 1e-4

func randomVec(r *rand.Rand) vec3.Vec3 {
	c := func() float32 { return r.Float32()*20 - 10 }
	return vec3.New(c(), c(), c())
}

func TestRoundTrip(t *testing.T) {
	v := vec3.New(1, -2.5, 3)

	assert.Equal(t, mgl32.Vec3{1, -2.5, 3}, ToVec3(v))
	assert.Equal(t, v, FromVec3(ToVec3(v)))

	assert.Equal(t, mgl32.Vec2{1, -2.5}, ToVec2(v))
	assert.Equal(t, vec3.New(1, -2.5, 7), FromVec2(ToVec2(v), 7))
}

// mathgl is an independent float32 implementation, so the results should
// agree within rounding.
func TestAgreesWithMathGL(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))

	for i := 0; i < 300; i++ {
		a, b := randomVec(r), randomVec(r)
		ga, gb := ToVec3(a), ToVec3(b)

		require.True(t, a.Add(b).ApproxEqual(FromVec3(ga.Add(gb)), tolerance))
		require.True(t, a.Sub(b).ApproxEqual(FromVec3(ga.Sub(gb)), tolerance))
		require.True(t, a.MulScalar(3).ApproxEqual(FromVec3(ga.Mul(3)), tolerance))
		require.True(t, a.Cross(b).ApproxEqual(FromVec3(ga.Cross(gb)), tolerance),
			"cross %v x %v", a, b)
		require.InDelta(t, ga.Dot(gb), a.Dot(b), tolerance*10)
		require.InDelta(t, ga.Len(), a.Magnitude(), tolerance)

		if a.Magnitude() > 0 {
			require.True(t, a.Normalize().ApproxEqual(FromVec3(ga.Normalize()), tolerance))
		}

		angle := r.Float32()*2*vec3.Pi - vec3.Pi
		want := FromVec2(mgl32.Rotate2D(angle).Mul2x1(ToVec2(a)), a.Z)
		require.True(t, a.Rotate2D(angle).ApproxEqual(want, tolerance),
			"rotate %v by %v", a, angle)
	}
}
