package geometry

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Torus represents a torus lying in the XZ plane
type Torus struct {
	MajorRadius float32 // Distance from the center to the middle of the tube
	MinorRadius float32 // Tube radius
}

// NewTorus creates a new torus
func NewTorus(majorRadius, minorRadius float32) *Torus {
	return &Torus{MajorRadius: majorRadius, MinorRadius: minorRadius}
}

// Distance implements Shape
func (t *Torus) Distance(p core.Vec3) float32 {
	return TorusDistance(p, core.NewVec2(t.MajorRadius, t.MinorRadius))
}

// Validate rejects non-positive radii
func (t *Torus) Validate() error {
	if !(t.MajorRadius > 0) || !(t.MinorRadius > 0) {
		return fmt.Errorf("torus radii must be > 0, got (%g, %g): %w", t.MajorRadius, t.MinorRadius, core.ErrInvalidParameter)
	}
	return nil
}
