// Package mgl converts between vec3.Vec3 and the go-gl/mathgl float32 vectors
// used by OpenGL code.
package mgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/vecmath/pkg/vec3"
)

func ToVec3(v vec3.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func FromVec3(v mgl32.Vec3) vec3.Vec3 {
	return vec3.New(v.X(), v.Y(), v.Z())
}

// ToVec2 drops Z.
func ToVec2(v vec3.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

// FromVec2 lifts a 2D vector back to 3D with the given z.
func FromVec2(v mgl32.Vec2, z float32) vec3.Vec3 {
	return vec3.New(v.X(), v.Y(), z)
}
