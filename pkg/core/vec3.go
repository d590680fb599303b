package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is the 3D float32 vector used throughout the renderer
type Vec3 = mgl32.Vec3

// Vec2 is the 2D float32 vector used for shape parameters and view coordinates
type Vec2 = mgl32.Vec2

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Splat returns a vector with all three components set to v
func Splat(v float32) Vec3 {
	return Vec3{v, v, v}
}

// Normalize returns a unit vector in the same direction, or the zero vector for zero input
func Normalize(v Vec3) Vec3 {
	length := v.Len()
	if length == 0 {
		return Vec3{}
	}
	return v.Mul(1 / length)
}

// MulElem returns component-wise multiplication of two vectors
func MulElem(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// MinElem returns the component-wise minimum of two vectors
func MinElem(a, b Vec3) Vec3 {
	return Vec3{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

// MaxElem returns the component-wise maximum of two vectors
func MaxElem(a, b Vec3) Vec3 {
	return Vec3{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

// AbsElem returns the component-wise absolute value
func AbsElem(v Vec3) Vec3 {
	return Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}

// Reflect reflects the incident direction about the normal (GLSL reflect)
func Reflect(incident, normal Vec3) Vec3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}

// Mix linearly interpolates from x to y: x + (y-x)*t
func Mix(x, y, t float32) float32 {
	return x + (y-x)*t
}

// MixVec3 linearly interpolates each component from x to y
func MixVec3(x, y Vec3, t float32) Vec3 {
	return x.Add(y.Sub(x).Mul(t))
}

// ClampVec3 returns a vector with components clamped to [lo, hi]
func ClampVec3(v Vec3, lo, hi float32) Vec3 {
	return Vec3{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi), Clamp(v[2], lo, hi)}
}

// GammaCorrect applies gamma correction to color values
func GammaCorrect(v Vec3, gamma float32) Vec3 {
	if gamma == 1 || gamma == 0 {
		return v
	}
	invGamma := 1 / gamma
	return Vec3{
		math32.Pow(math32.Max(v[0], 0), invGamma),
		math32.Pow(math32.Max(v[1], 0), invGamma),
		math32.Pow(math32.Max(v[2], 0), invGamma),
	}
}

// IsFinite reports whether every component is neither NaN nor infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
