package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecNear(a, b Vec3, tolerance float32) bool {
	return a.Sub(b).Len() <= tolerance
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"unit x", NewVec3(3, 0, 0), NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(1, 1, 0), NewVec3(1/math32.Sqrt(2), 1/math32.Sqrt(2), 0)},
		{"zero stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.vector)
			if !vecNear(result, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	incident := Normalize(NewVec3(1, -1, 0))
	normal := NewVec3(0, 1, 0)

	result := Reflect(incident, normal)
	expected := Normalize(NewVec3(1, 1, 0))
	if !vecNear(result, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestMixEndpoints(t *testing.T) {
	if got := Mix(2, 6, 0); got != 2 {
		t.Errorf("Mix(2,6,0) = %f, want 2", got)
	}
	if got := Mix(2, 6, 1); got != 6 {
		t.Errorf("Mix(2,6,1) = %f, want 6", got)
	}
	if got := Mix(2, 6, 0.25); got != 3 {
		t.Errorf("Mix(2,6,0.25) = %f, want 3", got)
	}

	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 2, 4)
	if got := MixVec3(a, b, 0.5); !vecNear(got, NewVec3(0.5, 1, 2), 1e-6) {
		t.Errorf("MixVec3 midpoint = %v", got)
	}
}

func TestClampAndElementwise(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp(-1) = %f", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp(2) = %f", got)
	}

	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 4, 2)
	if got := MinElem(a, b); got != NewVec3(-1, -2, 2) {
		t.Errorf("MinElem = %v", got)
	}
	if got := MaxElem(a, b); got != NewVec3(1, 4, 3) {
		t.Errorf("MaxElem = %v", got)
	}
	if got := MulElem(a, b); got != NewVec3(-1, -8, 6) {
		t.Errorf("MulElem = %v", got)
	}
	if got := AbsElem(a); got != NewVec3(1, 2, 3) {
		t.Errorf("AbsElem = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(NewVec3(1, 2, 3)) {
		t.Error("Expected finite vector")
	}
	if IsFinite(NewVec3(math32.NaN(), 0, 0)) {
		t.Error("Expected NaN to be non-finite")
	}
	if IsFinite(NewVec3(0, math32.Inf(1), 0)) {
		t.Error("Expected Inf to be non-finite")
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -2))

	if !vecNear(ray.Direction, NewVec3(0, 0, -1), 1e-6) {
		t.Fatalf("Expected normalized direction, got %v", ray.Direction)
	}
	if got := ray.At(4.5); !vecNear(got, NewVec3(0, 0, 0.5), 1e-6) {
		t.Errorf("Expected (0,0,0.5), got %v", got)
	}
}
