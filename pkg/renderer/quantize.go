package renderer

import (
	"image/color"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// Quantize converts a linear color to 8-bit RGBA. Channels are gamma corrected,
// clamped to [0, 1] and truncated, not rounded.
func Quantize(c core.Vec3, gamma float32) color.RGBA {
	c = core.GammaCorrect(c, gamma)
	c = core.ClampVec3(c, 0, 1)

	return color.RGBA{
		R: uint8(255 * c.X()),
		G: uint8(255 * c.Y()),
		B: uint8(255 * c.Z()),
		A: 255,
	}
}
