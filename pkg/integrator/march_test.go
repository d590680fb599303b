package integrator

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

var white = material.NewPhong(material.Solid(core.Splat(1)))

// sphereField is a sphere of the given radius centered at c
func sphereField(c core.Vec3, r float32) FieldFunc {
	return func(p core.Vec3) geometry.Surface {
		return geometry.NewSurface(geometry.SphereDistance(p.Sub(c), r), white)
	}
}

func TestMarchHitsSphere(t *testing.T) {
	cfg := DefaultMarchConfig()
	field := sphereField(core.Vec3{}, 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	result := March(field, ray, cfg)

	if !result.Hit {
		t.Fatalf("Expected hit, got miss after %d steps", result.Steps)
	}
	if math32.Abs(result.Surface.Distance-4.5) > cfg.Precision {
		t.Errorf("Expected depth 4.5 within %g, got %f", cfg.Precision, result.Surface.Distance)
	}
	if result.Steps >= cfg.MaxSteps {
		t.Errorf("Expected fewer than %d steps, got %d", cfg.MaxSteps, result.Steps)
	}
	if result.Surface.Appearance != white {
		t.Errorf("Expected appearance of the hit surface")
	}
}

func TestMarchMisses(t *testing.T) {
	cfg := DefaultMarchConfig()
	field := sphereField(core.Vec3{}, 0.5)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"pointing away", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))},
		{"passing beside", core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))},
		{"oblique", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(1, 1, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := March(field, tt.ray, cfg)
			if result.Hit {
				t.Fatalf("Expected miss, got hit at %f", result.Surface.Distance)
			}
			if result.Surface.Distance <= cfg.MaxDistance {
				t.Errorf("Expected depth > %g, got %f", cfg.MaxDistance, result.Surface.Distance)
			}
		})
	}
}

func TestMarchStartingInside(t *testing.T) {
	field := sphereField(core.Vec3{}, 1)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))

	result := March(field, ray, DefaultMarchConfig())
	if !result.Hit || result.Steps != 1 {
		t.Errorf("Expected immediate hit, got hit=%v steps=%d", result.Hit, result.Steps)
	}
}

func TestMarchExhaustionIsMiss(t *testing.T) {
	// A field that never lets the ray progress more than a tiny amount
	crawl := FieldFunc(func(p core.Vec3) geometry.Surface {
		return geometry.NewSurface(0.01, white)
	})
	cfg := DefaultMarchConfig()
	cfg.MaxSteps = 10

	result := March(crawl, core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), cfg)
	if result.Hit {
		t.Error("Expected exhaustion to be a miss")
	}
	if result.Steps != 10 {
		t.Errorf("Expected 10 steps, got %d", result.Steps)
	}
	if math32.Abs(result.Surface.Distance-0.1) > 1e-5 {
		t.Errorf("Expected traveled depth 0.1, got %f", result.Surface.Distance)
	}
}

func TestMarchConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *MarchConfig)
	}{
		{"zero precision", func(c *MarchConfig) { c.Precision = 0 }},
		{"negative min", func(c *MarchConfig) { c.MinDistance = -1 }},
		{"empty range", func(c *MarchConfig) { c.MaxDistance = c.MinDistance }},
		{"no steps", func(c *MarchConfig) { c.MaxSteps = 0 }},
	}

	if err := DefaultMarchConfig().Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMarchConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestNormalOnSphere(t *testing.T) {
	const r = 0.5
	field := sphereField(core.Vec3{}, r)
	maxAngle := float32(1) * math32.Pi / 180

	directions := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-0.3, 0.7, -0.2),
	}

	for _, dir := range directions {
		expected := core.Normalize(dir)
		p := expected.Mul(r)

		n := Normal(field, p, DefaultNormalEpsilon)
		angle := math32.Acos(core.Clamp(n.Dot(expected), -1, 1))
		if angle > maxAngle {
			t.Errorf("Normal at %v off by %f rad: %v", p, angle, n)
		}
	}
}

func TestNormalOnPlane(t *testing.T) {
	floor := FieldFunc(func(p core.Vec3) geometry.Surface {
		return geometry.NewSurface(geometry.PlaneDistance(p, -1), white)
	})

	n := Normal(floor, core.NewVec3(3, -1, -7), DefaultNormalEpsilon)
	if n.Sub(core.NewVec3(0, 1, 0)).Len() > 1e-4 {
		t.Errorf("Expected +Y, got %v", n)
	}
}
