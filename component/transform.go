package component

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent places an entity in world space
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles in radians
	Scale    float64
}

// KineticComponent holds constant-velocity motion
// Direction need not be normalized, Speed is applied per reference frame
type KineticComponent struct {
	Direction mgl64.Vec3
	Speed     float64
}

// ColliderComponent is a distance-threshold hit sphere
type ColliderComponent struct {
	Radius float64
}
