package geometry

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Box represents an axis-aligned box centered at the object origin
type Box struct {
	HalfExtents core.Vec3
}

// NewBox creates a box from its full size along each axis
func NewBox(size core.Vec3) *Box {
	return &Box{HalfExtents: size.Mul(0.5)}
}

// Distance implements Shape
func (b *Box) Distance(p core.Vec3) float32 {
	return BoxDistance(p, b.HalfExtents)
}

// Validate rejects negative extents
func (b *Box) Validate() error {
	for axis, e := range b.HalfExtents {
		if !(e >= 0) {
			return fmt.Errorf("box extent on axis %d must be >= 0, got %g: %w", axis, e, core.ErrInvalidParameter)
		}
	}
	return nil
}
