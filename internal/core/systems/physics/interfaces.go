package physics

import "github.com/zeusync/vecmath/pkg/vec3"

// Transform provides spatial information for sensors and AI logic.
type Transform interface {
	Origin() vec3.Vec3
}
