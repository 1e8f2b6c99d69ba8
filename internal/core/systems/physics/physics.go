package physics

import (
	"github.com/google/uuid"

	"github.com/zeusync/vecmath/pkg/vec3"
)

// Transform2D is a position on the XY plane. Its Z is always 0.
type Transform2D struct{ Pos vec3.Vec3 }

func (t Transform2D) Origin() vec3.Vec3 { return t.Pos.Flatten() }

type Transform3D struct{ Pos vec3.Vec3 }

func (t Transform3D) Origin() vec3.Vec3 { return t.Pos }

// Distance computes the Euclidean distance between two transforms.
func Distance(a, b Transform) float32 { return a.Origin().Dist(b.Origin()) }

// Distance2D computes the distance between two transforms on the XY plane.
func Distance2D(a, b Transform) float32 { return a.Origin().Dist2D(b.Origin()) }

var xAxis = vec3.New(1, 0, 0)

// Body is a point mass moving with constant velocity between updates.
type Body struct {
	ID       uuid.UUID
	Position vec3.Vec3
	Velocity vec3.Vec3
}

func NewBody(position, velocity vec3.Vec3) *Body {
	return &Body{ID: uuid.New(), Position: position, Velocity: velocity}
}

func (b *Body) Origin() vec3.Vec3 { return b.Position }

// Integrate advances the body by dt seconds.
func (b *Body) Integrate(dt float32) {
	b.Position.AddAssign(b.Velocity.MulScalar(dt))
}

// Speed returns the length of the velocity.
func (b *Body) Speed() float32 { return b.Velocity.Magnitude() }

// SetSpeed keeps the direction of travel and changes its length. A body at
// rest stays at rest.
func (b *Body) SetSpeed(speed float32) {
	b.Velocity = b.Velocity.Scale(speed)
}

// Heading returns the direction of travel on the XY plane as a
// counter-clockwise angle from +X in [0, 2π).
func (b *Body) Heading() float32 {
	return xAxis.AngleTau2D(b.Velocity)
}

// Turn rotates the velocity counter-clockwise on the XY plane.
func (b *Body) Turn(angle float32) {
	b.Velocity = b.Velocity.Rotate2D(angle)
}

// Facing returns the unsigned angle in [0, π] between the direction of travel
// and the direction to target, both projected on the XY plane. A body at rest
// or on top of its target gets π/2.
func (b *Body) Facing(target vec3.Vec3) float32 {
	heading := b.Velocity.Flatten().Normalize()
	toTarget := target.Sub(b.Position).Flatten().Normalize()
	return heading.Angle2D(toTarget)
}

// Bound clamps the position into the box [lo, hi] and zeroes the velocity
// components that pushed it out.
func (b *Body) Bound(lo, hi vec3.Vec3) {
	clamped := b.Position.Clamp(lo, hi)
	if clamped.X != b.Position.X {
		b.Velocity.X = 0
	}
	if clamped.Y != b.Position.Y {
		b.Velocity.Y = 0
	}
	if clamped.Z != b.Position.Z {
		b.Velocity.Z = 0
	}
	b.Position = clamped
}
