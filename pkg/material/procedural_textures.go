package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Checkerboard returns the floor material at a world position: unit cells on the
// XZ plane alternating between two ambient levels.
func Checkerboard(p core.Vec3) Material {
	cell := math32.Mod(math32.Floor(p.X())+math32.Floor(p.Z()), 2)
	a := (1 + 0.7*cell) * 0.3

	return Material{
		Ambient:   core.Splat(a),
		Diffuse:   core.Splat(0.3),
		Shininess: 1,
	}
}
