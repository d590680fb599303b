package geometry

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

// MinSmoothness is the smallest blend radius the smooth operators will use.
// Smaller (or NaN) values are raised to it so a blend never divides by zero.
const MinSmoothness float32 = 1e-6

// Surface is the result of evaluating a scene at a point: a conservative signed
// distance to the nearest boundary and the appearance of that boundary.
type Surface struct {
	Distance   float32
	Appearance material.Appearance
}

// NewSurface creates a new surface sample
func NewSurface(distance float32, appearance material.Appearance) Surface {
	return Surface{Distance: distance, Appearance: appearance}
}

// Op identifies a binary composition operator
type Op uint8

const (
	OpUnion Op = iota
	OpSubtraction
	OpIntersection
	OpSmoothUnion
	OpSmoothSubtraction
	OpSmoothIntersection
)

var opNames = map[Op]string{
	OpUnion:              "union",
	OpSubtraction:        "subtraction",
	OpIntersection:       "intersection",
	OpSmoothUnion:        "smooth-union",
	OpSmoothSubtraction:  "smooth-subtraction",
	OpSmoothIntersection: "smooth-intersection",
}

// String returns the scene-file name of the operator
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// IsSmooth reports whether the operator takes a blend radius
func (op Op) IsSmooth() bool {
	return op == OpSmoothUnion || op == OpSmoothSubtraction || op == OpSmoothIntersection
}

// ParseOp converts a scene-file name into an Op
func ParseOp(name string) (Op, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for op, n := range opNames {
		if n == normalized {
			return op, nil
		}
	}
	return OpUnion, fmt.Errorf("unknown operator %q: %w", name, core.ErrInvalidParameter)
}

// Combine applies op to a and b. k is ignored by the hard operators.
func Combine(op Op, a, b Surface, k float32) Surface {
	switch op {
	case OpSubtraction:
		return Subtraction(a, b)
	case OpIntersection:
		return Intersection(a, b)
	case OpSmoothUnion:
		return SmoothUnion(a, b, k)
	case OpSmoothSubtraction:
		return SmoothSubtraction(a, b, k)
	case OpSmoothIntersection:
		return SmoothIntersection(a, b, k)
	default:
		return Union(a, b)
	}
}

// Union keeps the closer operand; ties keep a
func Union(a, b Surface) Surface {
	if b.Distance < a.Distance {
		return b
	}
	return a
}

// Subtraction carves a out of b and keeps the appearance of a
func Subtraction(a, b Surface) Surface {
	return Surface{
		Distance:   math32.Max(-a.Distance, b.Distance),
		Appearance: a.Appearance,
	}
}

// Intersection keeps the region inside both operands and the appearance of a
func Intersection(a, b Surface) Surface {
	return Surface{
		Distance:   math32.Max(a.Distance, b.Distance),
		Appearance: a.Appearance,
	}
}

// SmoothUnion blends a and b over radius k. The same weight drives distance and
// appearance so colors fade across the seam.
func SmoothUnion(a, b Surface, k float32) Surface {
	k = smoothness(k)
	h := core.Clamp(0.5+0.5*(b.Distance-a.Distance)/k, 0, 1)
	return Surface{
		Distance:   core.Mix(b.Distance, a.Distance, h) - k*h*(1-h),
		Appearance: material.MixAppearance(b.Appearance, a.Appearance, h),
	}
}

// SmoothSubtraction carves a out of b with a rounded edge of radius k. Where the
// carved wall dominates (h -> 1) the appearance of a shows through.
func SmoothSubtraction(a, b Surface, k float32) Surface {
	k = smoothness(k)
	h := core.Clamp(0.5-0.5*(b.Distance+a.Distance)/k, 0, 1)
	return Surface{
		Distance:   core.Mix(b.Distance, -a.Distance, h) + k*h*(1-h),
		Appearance: material.MixAppearance(b.Appearance, a.Appearance, h),
	}
}

// SmoothIntersection keeps the region inside both operands with a rounded edge
func SmoothIntersection(a, b Surface, k float32) Surface {
	k = smoothness(k)
	h := core.Clamp(0.5-0.5*(b.Distance-a.Distance)/k, 0, 1)
	return Surface{
		Distance:   core.Mix(b.Distance, a.Distance, h) + k*h*(1-h),
		Appearance: material.MixAppearance(b.Appearance, a.Appearance, h),
	}
}

func smoothness(k float32) float32 {
	if !(k > MinSmoothness) {
		return MinSmoothness
	}
	return k
}
