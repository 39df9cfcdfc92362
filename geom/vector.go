// Package geom holds the 2D vector primitive shared by every other package
// in this module, built on github.com/go-gl/mathgl: mgl64.Vec2 already gives
// finite-real pairs, Add/Sub/Mul/Dot/Len/Normalize and value semantics (no
// aliasing on copy). The handful of operations mgl64.Vec2 does not carry,
// rotation by an angle, the 2D scalar cross product, and the polar angle,
// are added here as free functions.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2D is an ordered pair of finite reals (x, y).
type Vector2D = mgl64.Vec2

// New builds a Vector2D from its components.
func New(x, y float64) Vector2D {
	return Vector2D{x, y}
}

// Zero is the additive identity.
var Zero = Vector2D{0, 0}

// Rotate returns v rotated counter-clockwise by angle radians around the
// origin. Does not modify v.
func Rotate(v Vector2D, angle float64) Vector2D {
	s, c := math.Sincos(angle)
	return Vector2D{
		v.X()*c - v.Y()*s,
		v.X()*s + v.Y()*c,
	}
}

// PerpCW rotates v by -90 degrees (clockwise in the usual math orientation).
// This is the construction used both for deriving a polygon edge's outward
// normal from its edge vector, and for turning a contact-point offset into
// the lever arm used by the solver.
func PerpCW(v Vector2D) Vector2D {
	return Vector2D{v.Y(), -v.X()}
}

// Cross is the 2D scalar cross product a.x*b.y - a.y*b.x. Its sign gives the
// winding of (a, b); its magnitude is the area of the parallelogram they span.
func Cross(a, b Vector2D) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Angle returns the polar angle of v in radians, in (-pi, pi].
func Angle(v Vector2D) float64 {
	return math.Atan2(v.Y(), v.X())
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector2D) float64 {
	return a.Sub(b).Len()
}

// IsFinite reports whether both components of v are finite (not NaN or +-Inf).
func IsFinite(v Vector2D) bool {
	return !math.IsNaN(v.X()) && !math.IsInf(v.X(), 0) &&
		!math.IsNaN(v.Y()) && !math.IsInf(v.Y(), 0)
}
