package scene

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/geometry"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is read-only for the
// duration of a render and safe to share between workers.
type Scene struct {
	Name        string
	Description string
	Camera      geometry.Camera
	Lights      []lights.Light
	Root        Node       // Composition tree; Sample delegates to it
	Background  Background // Color returned for rays that miss
}

// Background is a vertical gradient indexed by ray direction
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// SolidBackground returns a constant background
func SolidBackground(color core.Vec3) Background {
	return Background{Top: color, Bottom: color}
}

// At returns the background color seen along direction
func (b Background) At(direction core.Vec3) core.Vec3 {
	t := 0.5 * (core.Normalize(direction).Y() + 1)
	return core.MixVec3(b.Bottom, b.Top, t)
}

// Sample is the scene function: position to nearest surface
func (s *Scene) Sample(p core.Vec3) geometry.Surface {
	return s.Root.Sample(p)
}

// Models returns every model in the composition tree in depth-first order
func (s *Scene) Models() []*Model {
	var models []*Model
	_ = Walk(s.Root, func(n Node) error {
		if m, ok := n.(*Model); ok {
			models = append(models, m)
		}
		return nil
	})
	return models
}

type validator interface {
	Validate() error
}

// Validate checks the whole scene before a render starts. Every node and light
// that can carry out-of-range parameters is checked.
func (s *Scene) Validate() error {
	if s.Root == nil {
		return fmt.Errorf("scene %q has no geometry: %w", s.Name, core.ErrInvalidParameter)
	}
	err := Walk(s.Root, func(n Node) error {
		if v, ok := n.(validator); ok {
			return v.Validate()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}

	for i, light := range s.Lights {
		if light == nil {
			return fmt.Errorf("scene %q: light %d is nil: %w", s.Name, i, core.ErrInvalidParameter)
		}
		if v, ok := light.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("scene %q: light %d: %w", s.Name, i, err)
			}
		}
	}

	if !core.IsFinite(s.Camera.Position) {
		return fmt.Errorf("scene %q: camera position is not finite: %w", s.Name, core.ErrInvalidParameter)
	}
	return nil
}
