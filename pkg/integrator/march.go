package integrator

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
)

// Field is anything that can be sphere traced. Implementations must never
// overestimate the distance to the nearest boundary.
type Field interface {
	Sample(p core.Vec3) geometry.Surface
}

// FieldFunc adapts a plain function to Field
type FieldFunc func(p core.Vec3) geometry.Surface

// Sample implements Field
func (f FieldFunc) Sample(p core.Vec3) geometry.Surface {
	return f(p)
}

// MarchConfig holds the sphere tracing constants
type MarchConfig struct {
	MinDistance float32 // Starting depth along the ray
	MaxDistance float32 // Depth past which the ray is a miss
	Precision   float32 // Distance below which the ray is a hit
	MaxSteps    int     // Iteration cap; exhausting it is a miss
}

// DefaultMarchConfig returns the standard marching constants
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		MinDistance: 0,
		MaxDistance: 100,
		Precision:   0.001,
		MaxSteps:    256,
	}
}

// Validate checks that the constants describe a usable march
func (c MarchConfig) Validate() error {
	if !(c.Precision > 0) {
		return fmt.Errorf("precision must be > 0, got %g: %w", c.Precision, core.ErrInvalidParameter)
	}
	if !(c.MinDistance >= 0) || !(c.MaxDistance > c.MinDistance) {
		return fmt.Errorf("distance range [%g, %g] is empty: %w", c.MinDistance, c.MaxDistance, core.ErrInvalidParameter)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be > 0, got %d: %w", c.MaxSteps, core.ErrInvalidParameter)
	}
	return nil
}

// MarchResult is the outcome of tracing one ray. Surface.Distance holds the total
// depth traveled, not the last local distance estimate.
type MarchResult struct {
	Surface geometry.Surface
	Steps   int
	Hit     bool
}

// March sphere traces ray through field. Running out of steps counts as a miss
// even when the depth is still inside the range.
func March(field Field, ray core.Ray, cfg MarchConfig) MarchResult {
	depth := cfg.MinDistance
	var surface geometry.Surface

	for step := 1; step <= cfg.MaxSteps; step++ {
		surface = field.Sample(ray.At(depth))
		depth += surface.Distance

		if surface.Distance < cfg.Precision {
			surface.Distance = depth
			return MarchResult{Surface: surface, Steps: step, Hit: true}
		}
		if depth > cfg.MaxDistance {
			surface.Distance = depth
			return MarchResult{Surface: surface, Steps: step}
		}
	}

	surface.Distance = depth
	return MarchResult{Surface: surface, Steps: cfg.MaxSteps}
}
