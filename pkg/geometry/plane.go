package geometry

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Plane represents an infinite horizontal floor at y = Height
type Plane struct {
	Height float32
}

// NewPlane creates a new plane
func NewPlane(height float32) *Plane {
	return &Plane{Height: height}
}

// Distance implements Shape
func (pl *Plane) Distance(p core.Vec3) float32 {
	return PlaneDistance(p, pl.Height)
}
