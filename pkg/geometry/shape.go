package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// SphereDistance is |p| - r
func SphereDistance(p core.Vec3, r float32) float32 {
	return p.Len() - r
}

// TorusDistance is the distance to a torus around the Y axis with major radius
// size.X() and tube radius size.Y()
func TorusDistance(p core.Vec3, size core.Vec2) float32 {
	q := core.NewVec2(core.NewVec2(p.X(), p.Z()).Len()-size.X(), p.Y())
	return q.Len() - size.Y()
}

// PlaneDistance is the height of p above the horizontal plane y = h
func PlaneDistance(p core.Vec3, h float32) float32 {
	return p.Y() - h
}

// BoxDistance is the distance to an axis-aligned box with the given half extents
func BoxDistance(p core.Vec3, halfExtents core.Vec3) float32 {
	q := core.AbsElem(p).Sub(halfExtents)
	outside := core.MaxElem(q, core.Vec3{}).Len()
	inside := math32.Min(math32.Max(q.X(), math32.Max(q.Y(), q.Z())), 0)
	return outside + inside
}

// Displace perturbs a distance by sin(p.x*a)*sin(p.y*a)*sin(p.z*a). The result is
// not a lower bound of the true distance; marching near displaced regions may
// overshoot.
func Displace(d float32, p core.Vec3, a float32) float32 {
	return d + math32.Sin(p.X()*a)*math32.Sin(p.Y()*a)*math32.Sin(p.Z()*a)
}
