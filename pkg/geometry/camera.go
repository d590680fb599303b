package geometry

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// Camera is a pinhole looking down -Z. Pixel coordinates are flipped vertically,
// centered and divided by the image height so the aspect ratio is preserved.
type Camera struct {
	Position    core.Vec3
	FocalLength float32 // Distance of the image plane; 0 means 1
}

// NewCamera creates a camera at the given position with unit focal length
func NewCamera(position core.Vec3) Camera {
	return Camera{Position: position, FocalLength: 1}
}

// ViewCoordinates maps a pixel to normalized view space
func (c Camera) ViewCoordinates(x, y, width, height int) core.Vec2 {
	w := float32(width)
	h := float32(height)
	px := float32(x) - 0.5*w
	py := (h - float32(y)) - 0.5*h
	return core.NewVec2(px/h, py/h)
}

// GetRay generates the primary ray through pixel (x, y)
func (c Camera) GetRay(x, y, width, height int) core.Ray {
	uv := c.ViewCoordinates(x, y, width, height)
	focal := c.FocalLength
	if focal == 0 {
		focal = 1
	}
	return core.NewRay(c.Position, core.NewVec3(uv.X(), uv.Y(), -focal))
}
