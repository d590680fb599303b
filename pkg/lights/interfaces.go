package lights

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Light is a light source that can be sampled from a shading point. Lights are
// immutable and shared read-only by every tile during a render.
type Light interface {
	// Sample returns the direction FROM point TO the light and the distance to it
	Sample(point core.Vec3) LightSample
}

// LightSample contains information about a light as seen from a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float32   // Distance to light
	Color     core.Vec3 // Light color
	Intensity float32   // Scalar intensity; constant regardless of distance
}
