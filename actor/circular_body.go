package actor

import (
	"fmt"
	"math"

	"github.com/akmonengine/farm2d/geom"
)

// CircularBody is a disk of a given radius centered on base.position.
type CircularBody struct {
	base

	Radius        float64
	radiusSquared float64
}

// NewCircularBody builds a CircularBody from seed, validating Radius and the
// mass/inertia union (§3, §7). Mass and moment of inertia come from
// seed.Density when it is positive (area = pi*r^2, moment = 0.5*m*r^2, the
// 2D-disk analogue of a sphere's 2/5*m*r^2), otherwise from the explicit
// Mass/MomentOfInertia pair; seed.Static overrides both.
func NewCircularBody(seed Seed) (*CircularBody, error) {
	if seed.Radius <= 0 || math.IsNaN(seed.Radius) || math.IsInf(seed.Radius, 0) {
		return nil, fmt.Errorf("actor: circular body radius must be finite and positive, got %v", seed.Radius)
	}

	r := seed.Radius
	mass, invMass, moment, invMoment, err := massData(
		seed,
		func() float64 { return math.Pi * r * r },
		func(m float64) float64 { return 0.5 * m * r * r },
	)
	if err != nil {
		return nil, err
	}

	return &CircularBody{
		base:          newBase(seed, mass, invMass, moment, invMoment),
		Radius:        r,
		radiusSquared: r * r,
	}, nil
}

// RadiusSquared returns Radius*Radius, cached at construction.
func (c *CircularBody) RadiusSquared() float64 { return c.radiusSquared }

// ContainsPoint reports whether p lies strictly inside the disk.
func (c *CircularBody) ContainsPoint(p geom.Vector2D) bool {
	return geom.Distance(c.position, p) < c.Radius
}

// MinCoordinateAlong is the disk's minimum projection onto axis: the
// center's projection minus the radius (§3).
func (c *CircularBody) MinCoordinateAlong(axis geom.Vector2D) float64 {
	return c.position.Dot(axis) - c.Radius
}

// Integrate advances the body by dt (§4.1). A circle's geometry is fully
// described by position, which base.integrateLinearAngular already updates,
// so there is no step-5 world-geometry recomputation to add.
func (c *CircularBody) Integrate(dt float64) {
	c.integrateLinearAngular(dt)
}
