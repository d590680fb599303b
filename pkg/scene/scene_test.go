package scene

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

var (
	red  = material.NewPhong(material.Solid(core.NewVec3(1, 0, 0)))
	blue = material.NewPhong(material.Solid(core.NewVec3(0, 0, 1)))
)

func TestModelOffset(t *testing.T) {
	model := NewModel("ball", geometry.NewSphere(0.5), red, core.NewVec3(1, 2, 3))

	if d := model.Distance(core.NewVec3(1, 2, 3)); math32.Abs(d+0.5) > 1e-6 {
		t.Errorf("Expected -0.5 at the offset center, got %f", d)
	}

	surface := model.Sample(core.NewVec3(1, 2, 5))
	if math32.Abs(surface.Distance-1.5) > 1e-6 {
		t.Errorf("Expected 1.5, got %f", surface.Distance)
	}
	if surface.Appearance != red {
		t.Errorf("Expected model appearance to pass through")
	}
}

func TestModelCheckerPattern(t *testing.T) {
	floor := NewModel("floor", geometry.NewPlane(-1), red, core.Vec3{})
	floor.Pattern = PatternChecker

	even := floor.Sample(core.NewVec3(0.5, -1, 0.5))
	odd := floor.Sample(core.NewVec3(1.5, -1, 0.5))

	if even.Appearance.Material.Ambient == odd.Appearance.Material.Ambient {
		t.Errorf("Adjacent cells should differ, both %v", even.Appearance.Material.Ambient)
	}
	if even.Appearance.Shader != red.Shader {
		t.Errorf("Pattern should keep the model shader")
	}
}

func TestParsePattern(t *testing.T) {
	if p, err := ParsePattern("checker"); err != nil || p != PatternChecker {
		t.Errorf("ParsePattern(checker) = %v, %v", p, err)
	}
	if p, err := ParsePattern(""); err != nil || p != PatternNone {
		t.Errorf("ParsePattern('') = %v, %v", p, err)
	}
	if _, err := ParsePattern("stripes"); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestGroupIsLeftFoldedUnion(t *testing.T) {
	a := NewModel("a", geometry.NewSphere(1), red, core.NewVec3(-2, 0, 0))
	b := NewModel("b", geometry.NewSphere(1), blue, core.NewVec3(2, 0, 0))
	group := NewGroup(a, b)

	tests := []struct {
		name       string
		point      core.Vec3
		appearance material.Appearance
	}{
		{"closer to a", core.NewVec3(-1, 0, 0), red},
		{"closer to b", core.NewVec3(1.5, 0, 0), blue},
		{"tie keeps first", core.NewVec3(0, 0, 0), red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := group.Sample(tt.point)
			want := math32.Min(a.Distance(tt.point), b.Distance(tt.point))
			if got.Distance != want {
				t.Errorf("Expected %f, got %f", want, got.Distance)
			}
			if got.Appearance != tt.appearance {
				t.Errorf("Wrong appearance")
			}
		})
	}
}

func TestEmptyGroupIsFarAway(t *testing.T) {
	got := NewGroup().Sample(core.Vec3{})
	if got.Distance < 1e30 || math32.IsInf(got.Distance, 0) {
		t.Errorf("Expected a large finite distance, got %f", got.Distance)
	}
}

func TestBlendSample(t *testing.T) {
	a := NewModel("a", geometry.NewSphere(1), red, core.Vec3{})
	b := NewModel("b", geometry.NewSphere(1), blue, core.NewVec3(1, 0, 0))
	p := core.NewVec3(0.5, 0.5, 0)

	blend := NewBlend(geometry.OpSmoothUnion, 0.3, a, b)
	expected := geometry.SmoothUnion(a.Sample(p), b.Sample(p), 0.3)
	if got := blend.Sample(p); got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestBlendValidate(t *testing.T) {
	a := NewModel("a", geometry.NewSphere(1), red, core.Vec3{})
	b := NewModel("b", geometry.NewSphere(1), blue, core.Vec3{})

	tests := []struct {
		name    string
		blend   *Blend
		wantErr bool
	}{
		{"hard union ignores k", Union(a, b), false},
		{"smooth positive k", NewBlend(geometry.OpSmoothUnion, 0.1, a, b), false},
		{"smooth zero k", NewBlend(geometry.OpSmoothUnion, 0, a, b), true},
		{"smooth negative k", NewBlend(geometry.OpSmoothSubtraction, -0.5, a, b), true},
		{"smooth nan k", NewBlend(geometry.OpSmoothIntersection, math32.NaN(), a, b), true},
		{"missing operand", NewBlend(geometry.OpUnion, 0, a, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.blend.Validate()
			if tt.wantErr && !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSceneValidate(t *testing.T) {
	valid := func() *Scene {
		return &Scene{
			Name:   "test",
			Camera: geometry.NewCamera(core.NewVec3(0, 0, 5)),
			Lights: []lights.Light{lights.NewWhiteLight(core.NewVec3(1, 1, 1))},
			Root:   NewModel("ball", geometry.NewSphere(0.5), red, core.Vec3{}),
		}
	}

	tests := []struct {
		name   string
		mutate func(s *Scene)
	}{
		{"no root", func(s *Scene) { s.Root = nil }},
		{"bad radius", func(s *Scene) { s.Root = NewModel("bad", geometry.NewSphere(-1), red, core.Vec3{}) }},
		{"nested zero smoothness", func(s *Scene) {
			inner := NewBlend(geometry.OpSmoothUnion, 0, s.Root, s.Root)
			s.Root = NewGroup(s.Root, inner)
		}},
		{"nil light", func(s *Scene) { s.Lights = append(s.Lights, nil) }},
		{"nan light", func(s *Scene) {
			s.Lights = []lights.Light{lights.NewWhiteLight(core.NewVec3(math32.NaN(), 0, 0))}
		}},
		{"nan camera", func(s *Scene) { s.Camera.Position = core.NewVec3(0, math32.Inf(1), 0) }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Unexpected error for valid scene: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			if err := s.Validate(); !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestSceneModels(t *testing.T) {
	s := NewBlendScene()

	models := s.Models()
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}

	expected := []string{"cutter", "left", "right"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}
}

func TestBackground(t *testing.T) {
	bg := Background{Top: core.NewVec3(0, 0, 1), Bottom: core.NewVec3(1, 1, 1)}

	if got := bg.At(core.NewVec3(0, 1, 0)); got.Sub(bg.Top).Len() > 1e-6 {
		t.Errorf("Straight up should be Top, got %v", got)
	}
	if got := bg.At(core.NewVec3(0, -1, 0)); got.Sub(bg.Bottom).Len() > 1e-6 {
		t.Errorf("Straight down should be Bottom, got %v", got)
	}
	if got := bg.At(core.NewVec3(0, 0, -1)); got.Sub(core.NewVec3(0.5, 0.5, 1)).Len() > 1e-6 {
		t.Errorf("Horizon should be the midpoint, got %v", got)
	}

	white := SolidBackground(core.Splat(1))
	if got := white.At(core.NewVec3(0.3, -0.2, -1)); got != core.Splat(1) {
		t.Errorf("Solid background should be constant, got %v", got)
	}
}

func TestBuiltinScenes(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewBuiltin(name)
			if err != nil {
				t.Fatalf("NewBuiltin(%q) error: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene failed validation: %v", err)
			}
			if len(s.Lights) == 0 {
				t.Error("Built-in scene has no lights")
			}
		})
	}

	if _, err := NewBuiltin("cornell-box"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestSphereSceneMatchesReferenceSetup(t *testing.T) {
	s := NewSphereScene()

	if s.Camera.Position != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected camera at (0,0,5), got %v", s.Camera.Position)
	}
	if d := s.Sample(core.Vec3{}).Distance; math32.Abs(d+0.5) > 1e-6 {
		t.Errorf("Expected -0.5 at the sphere center, got %f", d)
	}
	light, ok := s.Lights[0].(*lights.PointLight)
	if !ok || light.Position != core.NewVec3(8, 2, -10) {
		t.Errorf("Expected point light at (8,2,-10), got %+v", s.Lights[0])
	}
}
