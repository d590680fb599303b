package loaders

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// SceneCfg is the JSON form of a scene. Vectors are written as [x, y, z].
type SceneCfg struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`
	Variant     string `json:"variant,omitempty"`

	Camera     CameraCfg                `json:"camera"`
	Background BackgroundCfg            `json:"background"`
	Lights     []LightCfg               `json:"lights"`
	Materials  map[string]AppearanceCfg `json:"materials,omitempty"`
	Root       NodeCfg                  `json:"root"`
}

type CameraCfg struct {
	Position    core.Vec3 `json:"position"`
	FocalLength float32   `json:"focalLength,omitempty"` // defaults 1
}

// BackgroundCfg sets either a solid color or a vertical gradient; default white
type BackgroundCfg struct {
	Color  *core.Vec3 `json:"color,omitempty"`
	Top    *core.Vec3 `json:"top,omitempty"`
	Bottom *core.Vec3 `json:"bottom,omitempty"`
}

type LightCfg struct {
	Position  core.Vec3  `json:"position"`
	Intensity *float32   `json:"intensity,omitempty"` // defaults 1
	Color     *core.Vec3 `json:"color,omitempty"`     // defaults white
}

// AppearanceCfg describes either a Phong material or a Lambert base color
type AppearanceCfg struct {
	Shader string `json:"shader,omitempty"` // "phong" (default) or "lambert"

	Color     *core.Vec3 `json:"color,omitempty"` // lambert base color, or phong diffuse shorthand
	Ambient   *core.Vec3 `json:"ambient,omitempty"`
	Diffuse   *core.Vec3 `json:"diffuse,omitempty"`
	Specular  *core.Vec3 `json:"specular,omitempty"`
	Shininess float32    `json:"shininess,omitempty"` // defaults 1

	DiffuseFactor *float32 `json:"diffuseFactor,omitempty"` // lambert, defaults 0.8
	AmbientFactor *float32 `json:"ambientFactor,omitempty"` // lambert, defaults 0.2
}

// NodeCfg is either a model (Shape set) or a composite (Op set)
type NodeCfg struct {
	Name string `json:"name,omitempty"`

	Shape       string         `json:"shape,omitempty"` // sphere, torus, plane, box
	Radius      float32        `json:"radius,omitempty"`
	MajorRadius float32        `json:"majorRadius,omitempty"`
	MinorRadius float32        `json:"minorRadius,omitempty"`
	Height      float32        `json:"height,omitempty"`
	Size        core.Vec3      `json:"size,omitempty"`
	Displace    *DisplaceCfg   `json:"displace,omitempty"`
	Offset      core.Vec3      `json:"offset,omitempty"`
	Material    string         `json:"material,omitempty"`   // key into SceneCfg.Materials
	Appearance  *AppearanceCfg `json:"appearance,omitempty"` // inline alternative to Material
	Pattern     string         `json:"pattern,omitempty"`

	Op       string    `json:"op,omitempty"` // group or any composition operator
	K        float32   `json:"k,omitempty"`
	Children []NodeCfg `json:"children,omitempty"`
}

type DisplaceCfg struct {
	Frequency float32  `json:"frequency"`
	Scale     *float32 `json:"scale,omitempty"` // defaults 1; 0 disables the bumps
}

// LoadScene reads and builds a JSON scene file
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from JSON bytes
func ParseScene(data []byte) (*scene.Scene, error) {
	var cfg SceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %w", err)
	}
	return cfg.Build()
}

// Build converts the description into a validated scene
func (c SceneCfg) Build() (*scene.Scene, error) {
	if len(c.Lights) == 0 {
		return nil, fmt.Errorf("scene has no lights: %w", core.ErrInvalidParameter)
	}

	root, err := c.Root.Build(c.Materials)
	if err != nil {
		return nil, err
	}

	camera := geometry.NewCamera(c.Camera.Position)
	if c.Camera.FocalLength != 0 {
		camera.FocalLength = c.Camera.FocalLength
	}

	s := &scene.Scene{
		Name:        c.Name,
		Description: c.Description,
		Camera:      camera,
		Root:        root,
		Background:  c.Background.Build(),
	}
	for _, lc := range c.Lights {
		s.Lights = append(s.Lights, lc.Build())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build fills in the white default
func (b BackgroundCfg) Build() scene.Background {
	bg := scene.SolidBackground(core.Splat(1))
	if b.Color != nil {
		bg = scene.SolidBackground(*b.Color)
	}
	if b.Top != nil {
		bg.Top = *b.Top
	}
	if b.Bottom != nil {
		bg.Bottom = *b.Bottom
	}
	return bg
}

// Build fills in unit intensity and white
func (l LightCfg) Build() *lights.PointLight {
	light := lights.NewWhiteLight(l.Position)
	if l.Intensity != nil {
		light.Intensity = *l.Intensity
	}
	if l.Color != nil {
		light.Color = *l.Color
	}
	return light
}

// Build converts the description into an appearance
func (a AppearanceCfg) Build() (material.Appearance, error) {
	model, err := material.ParseShadingModel(a.Shader)
	if err != nil {
		return material.Appearance{}, err
	}

	if model == material.Lambert {
		if a.Color == nil {
			return material.Appearance{}, fmt.Errorf("lambert appearance needs a color: %w", core.ErrInvalidParameter)
		}
		return material.NewLambert(*a.Color, valueOr(a.DiffuseFactor, 0.8), valueOr(a.AmbientFactor, 0.2)), nil
	}

	m := material.Material{Shininess: a.Shininess}
	if m.Shininess == 0 {
		m.Shininess = 1
	}
	if a.Color != nil {
		m.Diffuse = *a.Color
	}
	if a.Diffuse != nil {
		m.Diffuse = *a.Diffuse
	}
	if a.Ambient != nil {
		m.Ambient = *a.Ambient
	}
	if a.Specular != nil {
		m.Specular = *a.Specular
	}
	return material.NewPhong(m), nil
}

// Build converts the description into a composition tree node
func (n NodeCfg) Build(materials map[string]AppearanceCfg) (scene.Node, error) {
	if n.Op != "" {
		return n.buildComposite(materials)
	}
	if n.Shape == "" {
		return nil, fmt.Errorf("node %q needs either a shape or an op: %w", n.Name, core.ErrInvalidParameter)
	}
	return n.buildModel(materials)
}

func (n NodeCfg) buildComposite(materials map[string]AppearanceCfg) (scene.Node, error) {
	children := make([]scene.Node, 0, len(n.Children))
	for i, child := range n.Children {
		node, err := child.Build(materials)
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", n.Op, i, err)
		}
		children = append(children, node)
	}

	if strings.EqualFold(n.Op, "group") {
		return scene.NewGroup(children...), nil
	}

	op, err := geometry.ParseOp(n.Op)
	if err != nil {
		return nil, err
	}
	if len(children) != 2 {
		return nil, fmt.Errorf("%v needs exactly 2 children, got %d: %w", op, len(children), core.ErrInvalidParameter)
	}
	return scene.NewBlend(op, n.K, children[0], children[1]), nil
}

func (n NodeCfg) buildModel(materials map[string]AppearanceCfg) (scene.Node, error) {
	shape, err := n.buildShape()
	if err != nil {
		return nil, err
	}

	var appearanceCfg AppearanceCfg
	switch {
	case n.Appearance != nil:
		appearanceCfg = *n.Appearance
	case n.Material != "":
		mc, ok := materials[n.Material]
		if !ok {
			return nil, fmt.Errorf("model %q references unknown material %q: %w", n.Name, n.Material, core.ErrInvalidParameter)
		}
		appearanceCfg = mc
	default:
		white := core.Splat(1)
		appearanceCfg = AppearanceCfg{Color: &white}
	}

	appearance, err := appearanceCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", n.Name, err)
	}

	pattern, err := scene.ParsePattern(n.Pattern)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", n.Name, err)
	}

	model := scene.NewModel(n.Name, shape, appearance, n.Offset)
	model.Pattern = pattern
	return model, nil
}

func (n NodeCfg) buildShape() (geometry.Shape, error) {
	var shape geometry.Shape
	switch strings.ToLower(n.Shape) {
	case "sphere":
		shape = geometry.NewSphere(n.Radius)
	case "torus":
		shape = geometry.NewTorus(n.MajorRadius, n.MinorRadius)
	case "plane", "floor":
		shape = geometry.NewPlane(n.Height)
	case "box":
		shape = geometry.NewBox(n.Size)
	default:
		return nil, fmt.Errorf("model %q has unknown shape %q: %w", n.Name, n.Shape, core.ErrInvalidParameter)
	}

	if n.Displace != nil {
		displaced := geometry.NewDisplaced(shape, n.Displace.Frequency)
		if n.Displace.Scale != nil {
			displaced.Scale = *n.Displace.Scale
		}
		shape = displaced
	}
	return shape, nil
}

func valueOr(v *float32, fallback float32) float32 {
	if v == nil {
		return fallback
	}
	return *v
}
