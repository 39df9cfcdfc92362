package geom

import (
	"math"
	"testing"
)

func approxEqual(t *testing.T, got, want Vector2D, tol float64) {
	t.Helper()
	if math.Abs(got.X()-want.X()) > tol || math.Abs(got.Y()-want.Y()) > tol {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector2D
		angle float64
		want  Vector2D
	}{
		{"identity", New(1, 0), 0, New(1, 0)},
		{"quarter turn", New(1, 0), math.Pi / 2, New(0, 1)},
		{"half turn", New(1, 0), math.Pi, New(-1, 0)},
		{"negative quarter turn", New(1, 0), -math.Pi / 2, New(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxEqual(t, Rotate(tt.v, tt.angle), tt.want, 1e-9)
		})
	}
}

func TestPerpCW(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want Vector2D
	}{
		{"unit x", New(1, 0), New(0, -1)},
		{"unit y", New(0, 1), New(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxEqual(t, PerpCW(tt.v), tt.want, 1e-9)
		})
	}

	// PerpCW must agree with a -90 degree Rotate.
	v := New(3, 4)
	approxEqual(t, PerpCW(v), Rotate(v, -math.Pi/2), 1e-9)
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2D
		want float64
	}{
		{"orthonormal basis", New(1, 0), New(0, 1), 1},
		{"reversed orthonormal basis", New(0, 1), New(1, 0), -1},
		{"parallel vectors", New(2, 2), New(4, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cross(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cross(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want float64
	}{
		{"along +x", New(1, 0), 0},
		{"along +y", New(0, 1), math.Pi / 2},
		{"along -x", New(-1, 0), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.v); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Angle(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if got, want := Distance(New(0, 0), New(3, 4)), 5.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Distance() = %v, want %v", got, want)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(New(1, 2)) {
		t.Error("IsFinite(finite vector) = false, want true")
	}
	if IsFinite(New(math.Inf(1), 0)) {
		t.Error("IsFinite(infinite vector) = true, want false")
	}
	if IsFinite(New(math.NaN(), 0)) {
		t.Error("IsFinite(NaN vector) = true, want false")
	}
}
