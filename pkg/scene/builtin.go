package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

var builtins = map[string]func() *Scene{
	"sphere":  NewSphereScene,
	"spheres": NewSpheresScene,
	"blend":   NewBlendScene,
	"torus":   NewTorusScene,
}

// BuiltinNames returns the names of the built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltin creates a fresh instance of the named built-in scene
func NewBuiltin(name string) (*Scene, error) {
	create, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, BuiltinNames())
	}
	return create(), nil
}

// NewSphereScene creates the reference scene: a sphere of radius 0.5 at the origin,
// one light at (8, 2, -10) and the camera at (0, 0, 5) looking down -Z.
func NewSphereScene() *Scene {
	orange := material.NewMaterial(
		core.NewVec3(0.1, 0.05, 0.0),
		core.NewVec3(0.9, 0.45, 0.1),
		core.Splat(0.6),
		32,
	)

	return &Scene{
		Name:        "sphere",
		Description: "Single sphere lit by one point light",
		Camera:      geometry.NewCamera(core.NewVec3(0, 0, 5)),
		Lights:      []lights.Light{lights.NewWhiteLight(core.NewVec3(8, 2, -10))},
		Root:        NewModel("sphere", geometry.NewSphere(0.5), material.NewPhong(orange), core.Vec3{}),
		Background: Background{
			Top:    core.NewVec3(0.5, 0.7, 1.0),
			Bottom: core.NewVec3(1.0, 1.0, 1.0),
		},
	}
}

// NewSpheresScene creates two colored spheres over a checkerboard floor at y = -1
func NewSpheresScene() *Scene {
	red := material.NewPhong(material.NewMaterial(
		core.NewVec3(0.1, 0, 0), core.NewVec3(1, 0, 0), core.Splat(0.5), 16))
	blue := material.NewPhong(material.NewMaterial(
		core.NewVec3(0, 0, 0.1), core.NewVec3(0, 0, 1), core.Splat(0.5), 16))

	floor := NewModel("floor", geometry.NewPlane(-1), material.NewPhong(material.Checkerboard(core.Vec3{})), core.Vec3{})
	floor.Pattern = PatternChecker

	return &Scene{
		Name:        "spheres",
		Description: "Red and blue spheres over a checkerboard floor",
		Camera:      geometry.NewCamera(core.NewVec3(0, 0, 3)),
		Lights:      []lights.Light{lights.NewWhiteLight(core.NewVec3(5, 7.5, 10))},
		Root: NewGroup(
			floor,
			NewModel("red", geometry.NewSphere(0.3), red, core.NewVec3(-0.5, 0, 0)),
			NewModel("blue", geometry.NewSphere(0.3), blue, core.NewVec3(0.5, 0, 0)),
		),
		Background: SolidBackground(core.Splat(1)),
	}
}

// NewBlendScene carves one sphere out of another with a rounded edge and melts a
// third sphere onto the result
func NewBlendScene() *Scene {
	white := material.NewLambert(core.Splat(1), 0.8, 0.2)
	tinted := material.NewLambert(core.NewVec3(0.4, 0.8, 1.0), 0.8, 0.2)

	carved := NewBlend(geometry.OpSmoothSubtraction, 0.1,
		NewModel("cutter", geometry.NewSphere(0.7), white, core.NewVec3(0, -0.5, 0.25)),
		NewModel("left", geometry.NewSphere(0.5), white, core.NewVec3(0.5, 0, 1)),
	)
	root := NewBlend(geometry.OpSmoothUnion, 0.4,
		carved,
		NewModel("right", geometry.NewSphere(0.5), tinted, core.NewVec3(-0.5, 0, 1)),
	)

	return &Scene{
		Name:        "blend",
		Description: "Smooth subtraction and smooth union of three spheres",
		Camera:      geometry.NewCamera(core.NewVec3(0, 0, 5)),
		Lights: []lights.Light{
			lights.NewPointLight(core.NewVec3(0, -1, 3), 0.8, core.NewVec3(1, 0, 0)),
			lights.NewWhiteLight(core.NewVec3(3, 4, 6)),
		},
		Root: root,
		Background: Background{
			Top:    core.NewVec3(0.2, 0.2, 0.3),
			Bottom: core.NewVec3(0.05, 0.05, 0.1),
		},
	}
}

// NewTorusScene shows the remaining primitives side by side
func NewTorusScene() *Scene {
	gold := material.NewLambert(core.NewVec3(1.0, 0.8, 0.3), 0.9, 0.15)
	green := material.NewLambert(core.NewVec3(0.3, 0.9, 0.4), 0.9, 0.15)
	grey := material.NewLambert(core.Splat(0.7), 0.9, 0.15)

	torus := NewModel("torus", geometry.NewTorus(0.6, 0.2), gold, core.NewVec3(-1.2, 0, 0))
	bumpy := NewModel("bumpy", &geometry.Displaced{Base: geometry.NewSphere(0.5), Frequency: 12, Scale: 0.04}, green, core.Vec3{})
	box := NewModel("box", geometry.NewBox(core.NewVec3(0.7, 0.7, 0.7)), grey, core.NewVec3(1.2, 0, 0))
	floor := NewModel("floor", geometry.NewPlane(-1), material.NewPhong(material.Checkerboard(core.Vec3{})), core.Vec3{})
	floor.Pattern = PatternChecker

	return &Scene{
		Name:        "torus",
		Description: "Torus, displaced sphere and box with Lambert shading",
		Camera:      geometry.NewCamera(core.NewVec3(0, 0.3, 4)),
		Lights:      []lights.Light{lights.NewWhiteLight(core.NewVec3(2, 5, 5))},
		Root:        NewGroup(floor, torus, bumpy, box),
		Background: Background{
			Top:    core.NewVec3(0.5, 0.7, 1.0),
			Bottom: core.NewVec3(1.0, 1.0, 1.0),
		},
	}
}
