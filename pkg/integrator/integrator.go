package integrator

import (
	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// RaySample is the result of evaluating one camera ray
type RaySample struct {
	Color core.Vec3
	Hit   bool
	Steps int // Primary march steps; shadow rays are not counted
}

// Integrator defines the interface for turning a camera ray into a color
type Integrator interface {
	RayColor(ray core.Ray, s *scene.Scene) RaySample
}

// RaymarchingIntegrator sphere traces the scene function and shades the first hit
type RaymarchingIntegrator struct {
	march   MarchConfig
	shading ShadingConfig
}

// NewRaymarchingIntegrator creates a new raymarching integrator
func NewRaymarchingIntegrator(march MarchConfig, shading ShadingConfig) *RaymarchingIntegrator {
	return &RaymarchingIntegrator{
		march:   march,
		shading: shading,
	}
}

// RayColor implements Integrator. Misses return the scene background.
func (ri *RaymarchingIntegrator) RayColor(ray core.Ray, s *scene.Scene) RaySample {
	result := March(s, ray, ri.march)
	if !result.Hit {
		return RaySample{Color: s.Background.At(ray.Direction), Steps: result.Steps}
	}

	p := ray.At(result.Surface.Distance)
	color := Shade(s, s.Lights, ShadePoint{
		Position:   p,
		Normal:     Normal(s, p, ri.shading.NormalEpsilon),
		RayDir:     ray.Direction,
		Appearance: result.Surface.Appearance,
	}, ri.march, ri.shading)

	return RaySample{Color: color, Hit: true, Steps: result.Steps}
}
