package actor

import (
	"fmt"
	"math"

	"github.com/akmonengine/farm2d/geom"
)

// PolygonBody is a convex polygon given as body-local vertex offsets,
// wound clockwise (§6). relativeVertices/relativeNormals never change after
// construction; Vertices/Normals hold the current world-space geometry,
// recomputed on every Integrate (§4.1 step 5).
type PolygonBody struct {
	base

	relativeVertices []geom.Vector2D
	relativeNormals  []geom.Vector2D

	Vertices []geom.Vector2D
	Normals  []geom.Vector2D
}

// NewPolygonBody builds a PolygonBody from seed, validating vertex count,
// convexity and winding (§3, §6, §9). Mass and moment of inertia come from
// seed.Density via the standard 2D polygon area/inertia formulas when it is
// positive, otherwise from the explicit Mass/MomentOfInertia pair;
// seed.Static overrides both.
func NewPolygonBody(seed Seed) (*PolygonBody, error) {
	vertices := seed.RelativeVertices
	if len(vertices) < 3 {
		return nil, fmt.Errorf("actor: polygon body needs at least 3 vertices, got %d", len(vertices))
	}
	if err := validateConvexClockwise(vertices); err != nil {
		return nil, err
	}

	mass, invMass, moment, invMoment, err := massData(
		seed,
		func() float64 { return polygonArea(vertices) },
		func(m float64) float64 { return polygonMomentOfInertia(vertices, m) },
	)
	if err != nil {
		return nil, err
	}

	relNormals := polygonNormals(vertices)
	relVertices := append([]geom.Vector2D(nil), vertices...)

	p := &PolygonBody{
		base:             newBase(seed, mass, invMass, moment, invMoment),
		relativeVertices: relVertices,
		relativeNormals:  relNormals,
		Vertices:         make([]geom.Vector2D, len(vertices)),
		Normals:          make([]geom.Vector2D, len(vertices)),
	}
	p.recomputeWorldGeometry()

	return p, nil
}

// recomputeWorldGeometry rebuilds Vertices/Normals from the current
// position/angle (§3, §4.1 step 5): world-space vertices are the relative
// vertex rotated by angle then translated by position; world-space normals
// are the relative normal rotated by angle.
func (p *PolygonBody) recomputeWorldGeometry() {
	for i, rv := range p.relativeVertices {
		p.Vertices[i] = geom.Rotate(rv, p.angle).Add(p.position)
	}
	for i, rn := range p.relativeNormals {
		p.Normals[i] = geom.Rotate(rn, p.angle)
	}
}

// Integrate advances the body by dt (§4.1), then recomputes world-space
// vertices/normals from the freshly updated position/angle (step 5).
func (p *PolygonBody) Integrate(dt float64) {
	p.integrateLinearAngular(dt)
	p.recomputeWorldGeometry()
}

// ContainsPoint reports whether p lies inside the (convex) polygon: p is
// inside iff it is on the inward side of every edge.
func (p *PolygonBody) ContainsPoint(point geom.Vector2D) bool {
	for i, n := range p.Normals {
		if point.Sub(p.Vertices[i]).Dot(n) >= 0 {
			return false
		}
	}
	return true
}

// MinCoordinateAlong is the minimum dot product of axis with any world
// vertex (§3).
func (p *PolygonBody) MinCoordinateAlong(axis geom.Vector2D) float64 {
	min := p.Vertices[0].Dot(axis)
	for _, v := range p.Vertices[1:] {
		if d := v.Dot(axis); d < min {
			min = d
		}
	}
	return min
}

// validateConvexClockwise rejects fewer than 3 (checked by the caller),
// non-convex, degenerate, or counter-clockwise-wound vertex sequences. For a
// clockwise-wound convex polygon the cross product of every pair of
// consecutive edge vectors is strictly negative (a consistent right turn);
// that single condition also subsumes the winding check, since a
// counter-clockwise convex polygon would show all-positive crosses instead.
func validateConvexClockwise(vertices []geom.Vector2D) error {
	n := len(vertices)
	positive, negative := 0, 0

	for i := 0; i < n; i++ {
		e1 := vertices[(i+1)%n].Sub(vertices[i])
		e2 := vertices[(i+2)%n].Sub(vertices[(i+1)%n])
		cr := geom.Cross(e1, e2)
		switch {
		case cr > 0:
			positive++
		case cr < 0:
			negative++
		}
	}

	switch {
	case negative == n:
		return nil
	case positive == n:
		return fmt.Errorf("actor: polygon vertices must be wound clockwise, got counter-clockwise winding (see winding convention)")
	default:
		return fmt.Errorf("actor: polygon vertices must describe a convex, non-degenerate polygon")
	}
}

// polygonArea returns the (positive) area of a clockwise-wound polygon via
// the shoelace formula; the signed sum is negative for clockwise winding.
func polygonArea(vertices []geom.Vector2D) float64 {
	return math.Abs(0.5 * signedPolygonArea(vertices))
}

func signedPolygonArea(vertices []geom.Vector2D) float64 {
	n := len(vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += geom.Cross(vertices[i], vertices[j])
	}
	return sum
}

// polygonMomentOfInertia returns the moment of inertia of a polygon of the
// given total mass about its local origin, using the standard 2D polygon
// inertia formula (vertices are assumed given relative to the center of
// mass, since they are body-local offsets).
func polygonMomentOfInertia(vertices []geom.Vector2D, mass float64) float64 {
	n := len(vertices)
	area := polygonArea(vertices)
	density := mass / area

	var numerator float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := vertices[i], vertices[j]
		cr := geom.Cross(vi, vj)
		numerator += cr * (vi.Dot(vi) + vi.Dot(vj) + vj.Dot(vj))
	}

	return math.Abs(density * numerator / 12)
}

// polygonNormals derives the unit outward normal of every edge (vertex[i],
// vertex[i+1 mod n]) as (vertex[i]-vertex[i+1]) rotated -90 degrees (§3).
func polygonNormals(vertices []geom.Vector2D) []geom.Vector2D {
	n := len(vertices)
	normals := make([]geom.Vector2D, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := vertices[i].Sub(vertices[j])
		normals[i] = geom.PerpCW(edge).Normalize()
	}
	return normals
}
