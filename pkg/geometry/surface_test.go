package geometry

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/material"
)

var (
	red  = material.NewPhong(material.Solid(core.NewVec3(1, 0, 0)))
	blue = material.NewPhong(material.Solid(core.NewVec3(0, 0, 1)))
)

// distancePairs covers separated, overlapping, equal and inside-both operands
var distancePairs = [][2]float32{
	{1, 2}, {2, 1}, {0.5, 0.5}, {-0.3, 0.2}, {0.2, -0.3}, {-1, -2}, {3, -3}, {0, 0}, {1e-4, -1e-4},
}

func TestUnionIsMin(t *testing.T) {
	for _, pair := range distancePairs {
		a := NewSurface(pair[0], red)
		b := NewSurface(pair[1], blue)

		got := Union(a, b)
		if got.Distance != math32.Min(pair[0], pair[1]) {
			t.Errorf("union(%f, %f) = %f", pair[0], pair[1], got.Distance)
		}
	}
}

func TestUnionAppearance(t *testing.T) {
	a := NewSurface(1, red)
	b := NewSurface(0.5, blue)

	if got := Union(a, b); got.Appearance != blue {
		t.Errorf("Expected closer operand's appearance")
	}

	tie := Union(NewSurface(1, red), NewSurface(1, blue))
	if tie.Appearance != red {
		t.Errorf("Ties should keep the left operand")
	}
}

func TestHardOperators(t *testing.T) {
	a := NewSurface(0.5, red)
	b := NewSurface(-0.25, blue)

	if got := Intersection(a, b); got.Distance != 0.5 || got.Appearance != red {
		t.Errorf("Intersection: got %+v", got)
	}
	if got := Subtraction(a, b); got.Distance != -0.25 || got.Appearance != red {
		t.Errorf("Subtraction: got %+v", got)
	}
	if got := Subtraction(NewSurface(-0.5, red), b); got.Distance != 0.5 {
		t.Errorf("Subtraction inside a should be outside the result, got %f", got.Distance)
	}
}

func TestSubtractionCarvesAOutOfB(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float32
		expected float32
	}{
		{"outside both keeps b", 1, 2, 2},
		{"inside b only", 0.5, -0.25, -0.25},
		{"inside both is carved", -0.5, -0.25, 0.5},
		{"inside a only", -1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewSurface(tt.a, red)
			b := NewSurface(tt.b, blue)

			if got := Subtraction(a, b).Distance; got != tt.expected {
				t.Errorf("Subtraction(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.expected)
			}
			// The hard operator is the k -> 0 limit of the smooth one
			if got := SmoothSubtraction(a, b, 1e-4).Distance; math32.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("SmoothSubtraction(%g, %g, 1e-4) = %g, want ~%g", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSmoothOperatorsConvergeToHard(t *testing.T) {
	operators := []struct {
		name   string
		smooth func(a, b Surface, k float32) Surface
		hard   func(a, b Surface) Surface
	}{
		{"union", SmoothUnion, Union},
		{"subtraction", SmoothSubtraction, Subtraction},
		{"intersection", SmoothIntersection, Intersection},
	}
	ks := []float32{0.5, 0.1, 0.01, 1e-3}

	for _, op := range operators {
		t.Run(op.name, func(t *testing.T) {
			for _, k := range ks {
				for _, pair := range distancePairs {
					a := NewSurface(pair[0], red)
					b := NewSurface(pair[1], blue)

					smooth := op.smooth(a, b, k).Distance
					hard := op.hard(a, b).Distance
					if diff := math32.Abs(smooth - hard); diff > k/4+1e-5 {
						t.Errorf("k=%g (%g, %g): |%g - %g| = %g exceeds k/4",
							k, pair[0], pair[1], smooth, hard, diff)
					}
				}
			}
		})
	}
}

func TestSmoothUnionBlendsAppearance(t *testing.T) {
	a := NewSurface(0.1, red)
	b := NewSurface(0.1, blue)

	got := SmoothUnion(a, b, 0.5)
	diffuse := got.Appearance.Material.Diffuse
	if math32.Abs(diffuse[0]-0.5) > 1e-6 || math32.Abs(diffuse[2]-0.5) > 1e-6 {
		t.Errorf("Equal distances should blend colors evenly, got %v", diffuse)
	}

	// Far apart: appearance follows the closer operand exactly
	far := SmoothUnion(NewSurface(5, red), NewSurface(0, blue), 0.1)
	if far.Appearance.Material.Diffuse != blue.Material.Diffuse {
		t.Errorf("Expected pure blue, got %v", far.Appearance.Material.Diffuse)
	}
}

func TestSmoothSubtractionAppearanceTracksDominantOperand(t *testing.T) {
	// Point well inside a: the carved wall of a dominates
	carved := SmoothSubtraction(NewSurface(-1, red), NewSurface(-0.5, blue), 0.1)
	if carved.Appearance.Material.Diffuse != red.Material.Diffuse {
		t.Errorf("Expected red carved wall, got %v", carved.Appearance.Material.Diffuse)
	}

	// Point well outside a: b's surface dominates
	kept := SmoothSubtraction(NewSurface(1, red), NewSurface(0.2, blue), 0.1)
	if kept.Appearance.Material.Diffuse != blue.Material.Diffuse {
		t.Errorf("Expected blue surface, got %v", kept.Appearance.Material.Diffuse)
	}
}

func TestSmoothOperatorsRejectZeroSmoothness(t *testing.T) {
	a := NewSurface(0.3, red)
	b := NewSurface(0.3, blue)

	for _, k := range []float32{0, -1, math32.NaN()} {
		for _, op := range []Op{OpSmoothUnion, OpSmoothSubtraction, OpSmoothIntersection} {
			got := Combine(op, a, b, k)
			if math32.IsNaN(got.Distance) || !core.IsFinite(got.Appearance.Material.Diffuse) {
				t.Errorf("%v with k=%g produced NaN: %+v", op, k, got)
			}
		}
	}
}

func TestCombineDispatch(t *testing.T) {
	a := NewSurface(0.5, red)
	b := NewSurface(-0.25, blue)

	tests := []struct {
		op       Op
		expected Surface
	}{
		{OpUnion, Union(a, b)},
		{OpSubtraction, Subtraction(a, b)},
		{OpIntersection, Intersection(a, b)},
		{OpSmoothUnion, SmoothUnion(a, b, 0.2)},
		{OpSmoothSubtraction, SmoothSubtraction(a, b, 0.2)},
		{OpSmoothIntersection, SmoothIntersection(a, b, 0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := Combine(tt.op, a, b, 0.2); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	for op, name := range opNames {
		got, err := ParseOp(name)
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v", name, got, err)
		}
	}

	if got, err := ParseOp("Smooth_Union"); err != nil || got != OpSmoothUnion {
		t.Errorf("Expected underscores and case to be normalized, got %v, %v", got, err)
	}
	if _, err := ParseOp("xor"); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}
