package geometry

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Shape is a signed distance function in object-local coordinates. Implementations
// must never overestimate the distance to their boundary, or the marcher will
// step through thin geometry.
type Shape interface {
	Distance(p core.Vec3) float32
}

// Validator is implemented by shapes whose parameters can be out of range
type Validator interface {
	Validate() error
}
