package material

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Mix interpolates every material term from x to y by t
func Mix(x, y Material, t float32) Material {
	return Material{
		Ambient:   core.MixVec3(x.Ambient, y.Ambient, t),
		Diffuse:   core.MixVec3(x.Diffuse, y.Diffuse, t),
		Specular:  core.MixVec3(x.Specular, y.Specular, t),
		Shininess: core.Mix(x.Shininess, y.Shininess, t),
	}
}

// MixAppearance interpolates materials from x to y by t. Shaders cannot be blended,
// so the result keeps the shader of whichever side carries the larger weight.
func MixAppearance(x, y Appearance, t float32) Appearance {
	shader := x.Shader
	if t >= 0.5 {
		shader = y.Shader
	}
	return Appearance{
		Material: Mix(x.Material, y.Material, t),
		Shader:   shader,
	}
}
