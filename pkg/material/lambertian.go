package material

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// NewLambert binds a base color and its diffuse/ambient weights into an appearance
// shaded with the simplified diffuse+ambient model.
func NewLambert(baseColor core.Vec3, diffuseFactor, ambientFactor float32) Appearance {
	return Appearance{
		Material: Solid(baseColor),
		Shader: Shader{
			Model:         Lambert,
			DiffuseFactor: diffuseFactor,
			AmbientFactor: ambientFactor,
		},
	}
}
