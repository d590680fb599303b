package material

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Material holds the reflectance terms of the Phong model
type Material struct {
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float32
}

// NewMaterial creates a new material
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float32) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// Solid creates a plain colored material with no ambient or specular response
func Solid(color core.Vec3) Material {
	return Material{Diffuse: color, Shininess: 1}
}

// BaseColor returns the color the Lambert model tints with
func (m Material) BaseColor() core.Vec3 {
	return m.Diffuse
}

// NewPhong creates an appearance shaded with the multi-term Phong model
func NewPhong(m Material) Appearance {
	return Appearance{
		Material: m,
		Shader:   Shader{Model: Phong},
	}
}
