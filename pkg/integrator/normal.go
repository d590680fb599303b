package integrator

import "github.com/df07/go-sdf-raymarcher/pkg/core"

// DefaultNormalEpsilon is the tetrahedron offset used by Normal
const DefaultNormalEpsilon float32 = 5e-4

// Normal estimates the field gradient at p from four samples on the corners of a
// tetrahedron. Across hard operator seams the estimate can jump.
func Normal(field Field, p core.Vec3, eps float32) core.Vec3 {
	xyy := core.NewVec3(eps, -eps, -eps)
	yyx := core.NewVec3(-eps, -eps, eps)
	yxy := core.NewVec3(-eps, eps, -eps)
	xxx := core.NewVec3(eps, eps, eps)

	n := xyy.Mul(field.Sample(p.Add(xyy)).Distance).
		Add(yyx.Mul(field.Sample(p.Add(yyx)).Distance)).
		Add(yxy.Mul(field.Sample(p.Add(yxy)).Distance)).
		Add(xxx.Mul(field.Sample(p.Add(xxx)).Distance))

	return core.Normalize(n)
}
