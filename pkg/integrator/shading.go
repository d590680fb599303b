package integrator

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/lights"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// ShadingConfig controls the local illumination pass
type ShadingConfig struct {
	NormalEpsilon float32 // Tetrahedron offset for Normal
	ShadowFactor  float32 // Diffuse multiplier for occluded lights
	Shadows       bool    // Trace a shadow ray per light
}

// DefaultShadingConfig returns the standard shading settings
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		NormalEpsilon: DefaultNormalEpsilon,
		ShadowFactor:  0.2,
		Shadows:       true,
	}
}

// Validate checks the shading settings
func (c ShadingConfig) Validate() error {
	if !(c.NormalEpsilon > 0) {
		return fmt.Errorf("normal epsilon must be > 0, got %g: %w", c.NormalEpsilon, core.ErrInvalidParameter)
	}
	if !(c.ShadowFactor >= 0) || c.ShadowFactor > 1 {
		return fmt.Errorf("shadow factor must be in [0, 1], got %g: %w", c.ShadowFactor, core.ErrInvalidParameter)
	}
	return nil
}

// ShadePoint is everything the shading model needs about a hit
type ShadePoint struct {
	Position   core.Vec3
	Normal     core.Vec3
	RayDir     core.Vec3 // Direction of the incoming camera ray
	Appearance material.Appearance
}

// Shade evaluates local illumination at a hit. Ambient is added once; diffuse and
// specular accumulate per light without clamping.
func Shade(field Field, lightList []lights.Light, sp ShadePoint, march MarchConfig, cfg ShadingConfig) core.Vec3 {
	m := sp.Appearance.Material
	shader := sp.Appearance.Shader

	var color core.Vec3
	switch shader.Model {
	case material.Lambert:
		color = m.BaseColor().Mul(shader.AmbientFactor)
	default:
		color = m.Ambient
	}

	for _, light := range lightList {
		sample := light.Sample(sp.Position)

		var diffuse, specular core.Vec3
		switch shader.Model {
		case material.Lambert:
			diffuse = lambertDiffuse(sp, sample)
		default:
			diffuse, specular = phongTerms(sp, sample)
		}

		if cfg.Shadows && occluded(field, sp, sample, march) {
			diffuse = diffuse.Mul(cfg.ShadowFactor)
		}
		color = color.Add(diffuse).Add(specular)
	}

	return color
}

// phongTerms returns the diffuse and specular contributions of one light
func phongTerms(sp ShadePoint, sample lights.LightSample) (core.Vec3, core.Vec3) {
	m := sp.Appearance.Material

	cosTheta := core.Clamp(sample.Direction.Dot(sp.Normal), 0, 1)
	diffuse := m.Diffuse.Mul(cosTheta)

	reflected := core.Reflect(sample.Direction.Mul(-1), sp.Normal)
	cosAlpha := core.Clamp(reflected.Dot(sp.RayDir.Mul(-1)), 0, 1)
	specular := m.Specular.Mul(math32.Pow(cosAlpha, m.Shininess))

	return diffuse, specular
}

// lambertDiffuse leaves brightness unclamped so back-lit faces go dark
func lambertDiffuse(sp ShadePoint, sample lights.LightSample) core.Vec3 {
	brightness := sample.Direction.Dot(sp.Normal) * sample.Intensity
	tinted := core.MulElem(sp.Appearance.Material.BaseColor(), sample.Color)
	return tinted.Mul(brightness * sp.Appearance.Shader.DiffuseFactor)
}

// occluded marches from just above the surface toward the light
func occluded(field Field, sp ShadePoint, sample lights.LightSample, march MarchConfig) bool {
	origin := sp.Position.Add(sp.Normal.Mul(2 * march.Precision))
	result := March(field, core.Ray{Origin: origin, Direction: sample.Direction}, march)
	return result.Hit && result.Surface.Distance < sample.Distance
}
