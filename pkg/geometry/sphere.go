package geometry

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Sphere represents a sphere centered at the object origin
type Sphere struct {
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(radius float32) *Sphere {
	return &Sphere{Radius: radius}
}

// Distance implements Shape
func (s *Sphere) Distance(p core.Vec3) float32 {
	return SphereDistance(p, s.Radius)
}

// Validate rejects non-positive radii
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("sphere radius must be > 0, got %g: %w", s.Radius, core.ErrInvalidParameter)
	}
	return nil
}
