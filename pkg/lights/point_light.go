package lights

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// PointLight is an infinitesimal light with no falloff
type PointLight struct {
	Position  core.Vec3
	Intensity float32
	Color     core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float32, color core.Vec3) *PointLight {
	return &PointLight{
		Position:  position,
		Intensity: intensity,
		Color:     color,
	}
}

// NewWhiteLight creates a unit intensity white point light
func NewWhiteLight(position core.Vec3) *PointLight {
	return NewPointLight(position, 1, core.Splat(1))
}

// Sample implements the Light interface
func (pl *PointLight) Sample(point core.Vec3) LightSample {
	toLight := pl.Position.Sub(point)
	return LightSample{
		Direction: core.Normalize(toLight),
		Distance:  toLight.Len(),
		Color:     pl.Color,
		Intensity: pl.Intensity,
	}
}

// Validate rejects lights whose parameters would poison shading with NaN
func (pl *PointLight) Validate() error {
	if !core.IsFinite(pl.Position) || !core.IsFinite(pl.Color) || !core.IsFinite(core.Splat(pl.Intensity)) {
		return fmt.Errorf("point light has non-finite parameters: %w", core.ErrInvalidParameter)
	}
	return nil
}
