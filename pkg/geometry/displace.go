package geometry

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Displaced adds a periodic bump pattern on top of another shape.
// Scale multiplies the bump height; zero disables the bumps.
type Displaced struct {
	Base      Shape
	Frequency float32
	Scale     float32
}

// NewDisplaced creates a displaced shape with unit bump height
func NewDisplaced(base Shape, frequency float32) *Displaced {
	return &Displaced{Base: base, Frequency: frequency, Scale: 1}
}

// Distance implements Shape
func (d *Displaced) Distance(p core.Vec3) float32 {
	return d.Base.Distance(p) + d.Scale*Displace(0, p, d.Frequency)
}

// Validate checks the wrapped shape
func (d *Displaced) Validate() error {
	if d.Base == nil {
		return fmt.Errorf("displaced shape has no base: %w", core.ErrInvalidParameter)
	}
	if v, ok := d.Base.(Validator); ok {
		return v.Validate()
	}
	return nil
}
