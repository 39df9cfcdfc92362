// Package actor implements the rigid-body model: the shared Body capability
// set plus the two concrete shapes this engine understands (CircularBody,
// PolygonBody), each carrying 2D position and a scalar angle rather than a
// 3D position and quaternion orientation. Shapes expose the narrow-phase
// primitives the Separating Axis Theorem actually needs: ContainsPoint and
// MinCoordinateAlong.
package actor

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/akmonengine/farm2d/geom"
	"github.com/akmonengine/farm2d/internal/invariant"
)

// DefaultRestitution is the coefficient of restitution a Seed gets when
// built with NewSeed. A Seed's zero value carries Restitution 0 (a
// perfectly inelastic body), which is itself a valid, meaningful value in
// [0,1]. Go's zero-value struct literal has no way to distinguish "0 on
// purpose" from "unset", so the documented default of 0.5 is only applied
// by NewSeed, not implicitly by the Seed type itself.
const DefaultRestitution = 0.5

// Body is the capability set every shape variant implements: a Go interface
// plus an embedded base struct (see `base` below) carrying the state and
// behavior common to every shape. The narrow phase and solver only ever
// need this common capability set, never the concrete shape.
type Body interface {
	ID() uuid.UUID

	Position() geom.Vector2D
	SetPosition(geom.Vector2D)
	Velocity() geom.Vector2D
	SetVelocity(geom.Vector2D)
	Angle() float64
	SetAngle(float64)
	AngularVelocity() float64
	SetAngularVelocity(float64)

	Mass() float64
	InvMass() float64
	MomentOfInertia() float64
	InvMomentOfInertia() float64
	Restitution() float64
	IsStatic() bool

	// ApplyForce adds f/mass to the body's acceleration, accumulated until
	// the next Integrate call clears it. Applying a force to a static body
	// is a programmer error (§4.1): it panics rather than silently no-oping.
	ApplyForce(f geom.Vector2D)
	// ApplyTorque adds t/momentOfInertia to the body's angular acceleration.
	ApplyTorque(t float64)

	// ContainsPoint reports whether p (world space) lies inside the shape.
	ContainsPoint(p geom.Vector2D) bool
	// MinCoordinateAlong returns min{v.Dot(axis) : v on the shape}, the
	// projection query the SAT probe runs against the "other" body.
	MinCoordinateAlong(axis geom.Vector2D) float64

	// Integrate advances the body's kinematics by dt using semi-implicit
	// Euler (§4.1). Shapes whose world-space geometry depends on pose
	// (PolygonBody) additionally recompute that geometry.
	Integrate(dt float64)
}

// Seed bundles the parameters recognized by Farm.GrowCircular/GrowPolygon
// (§6). Radius is only meaningful to GrowCircular; RelativeVertices only to
// GrowPolygon. Exactly one of {Static, Density, (Mass and MomentOfInertia)}
// should be set; see NewSeed for the common case.
type Seed struct {
	Position        geom.Vector2D
	Velocity        geom.Vector2D
	Angle           float64
	AngularVelocity float64
	Restitution     float64

	// Mass and MomentOfInertia are used directly when Density is not positive.
	Mass            float64
	MomentOfInertia float64
	// Density, when positive, derives Mass and MomentOfInertia from the
	// shape (circle area / polygon area and their respective moment
	// formulas) instead of the explicit Mass/MomentOfInertia fields.
	Density float64
	// Static bodies get mass == +Inf and momentOfInertia == +Inf regardless
	// of Mass/MomentOfInertia/Density.
	Static bool

	Radius           float64
	RelativeVertices []geom.Vector2D
}

// NewSeed returns a Seed with the documented default restitution (0.5)
// already filled in.
func NewSeed() Seed {
	return Seed{Restitution: DefaultRestitution}
}

// base holds the state and behavior shared by every Body implementation. It
// is embedded (by value) in CircularBody and PolygonBody.
type base struct {
	id uuid.UUID

	position     geom.Vector2D
	velocity     geom.Vector2D
	acceleration geom.Vector2D

	angle               float64
	angularVelocity     float64
	angularAcceleration float64

	mass                float64
	invMass             float64
	momentOfInertia     float64
	invMomentOfInertia  float64

	restitution float64
	static      bool
}

// massData resolves Seed's {Static | Density | Mass+MomentOfInertia}
// union into the (mass, invMass, momentOfInertia, invMomentOfInertia)
// quadruple every Body stores, given the shape-specific area/inertia
// functions. Storing the inverses explicitly (rather than relying on IEEE
// 1/+Inf == 0 semantics at every use site) is the §9 decision for handling
// static bodies: invMass and invMomentOfInertia are 0 for a static body by
// construction, so solver formulas never have to special-case +Inf.
func massData(seed Seed, area func() float64, momentForMass func(mass float64) float64) (mass, invMass, moment, invMoment float64, err error) {
	if seed.Static {
		return math.Inf(1), 0, math.Inf(1), 0, nil
	}

	if seed.Density > 0 {
		mass = seed.Density * area()
		moment = momentForMass(mass)
	} else {
		mass = seed.Mass
		moment = seed.MomentOfInertia
	}

	if mass <= 0 || math.IsInf(mass, 0) || math.IsNaN(mass) {
		return 0, 0, 0, 0, fmt.Errorf("actor: non-static body must have finite positive mass, got %v", mass)
	}
	if moment <= 0 || math.IsInf(moment, 0) || math.IsNaN(moment) {
		return 0, 0, 0, 0, fmt.Errorf("actor: non-static body must have finite positive moment of inertia, got %v", moment)
	}

	return mass, 1 / mass, moment, 1 / moment, nil
}

func newBase(seed Seed, mass, invMass, moment, invMoment float64) base {
	return base{
		id:                 uuid.New(),
		position:           seed.Position,
		velocity:           seed.Velocity,
		angle:              seed.Angle,
		angularVelocity:    seed.AngularVelocity,
		mass:               mass,
		invMass:            invMass,
		momentOfInertia:    moment,
		invMomentOfInertia: invMoment,
		restitution:        clamp01(seed.Restitution),
		static:             seed.Static || math.IsInf(mass, 1),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func (b *base) ID() uuid.UUID { return b.id }

func (b *base) Position() geom.Vector2D      { return b.position }
func (b *base) SetPosition(p geom.Vector2D)  { b.position = p }
func (b *base) Velocity() geom.Vector2D      { return b.velocity }
func (b *base) SetVelocity(v geom.Vector2D)  { b.velocity = v }
func (b *base) Angle() float64               { return b.angle }
func (b *base) SetAngle(a float64)           { b.angle = a }
func (b *base) AngularVelocity() float64     { return b.angularVelocity }
func (b *base) SetAngularVelocity(w float64) { b.angularVelocity = w }

func (b *base) Mass() float64               { return b.mass }
func (b *base) InvMass() float64            { return b.invMass }
func (b *base) MomentOfInertia() float64    { return b.momentOfInertia }
func (b *base) InvMomentOfInertia() float64 { return b.invMomentOfInertia }
func (b *base) Restitution() float64        { return b.restitution }
func (b *base) IsStatic() bool              { return b.static }

func (b *base) ApplyForce(f geom.Vector2D) {
	invariant.Assert(!b.static, "actor: ApplyForce called on a static body %s", b.id)
	b.acceleration = b.acceleration.Add(f.Mul(b.invMass))
}

func (b *base) ApplyTorque(t float64) {
	invariant.Assert(!b.static, "actor: ApplyTorque called on a static body %s", b.id)
	b.angularAcceleration += t * b.invMomentOfInertia
}

// integrateLinearAngular performs the semi-implicit Euler step common to
// every shape (§4.1 steps 1-4). Shape-specific world-geometry recomputation
// (step 5, polygons only) happens in the embedding type's own Integrate.
func (b *base) integrateLinearAngular(dt float64) {
	if b.static {
		return
	}

	b.velocity = b.velocity.Add(b.acceleration.Mul(dt))
	b.acceleration = geom.Zero
	b.position = b.position.Add(b.velocity.Mul(dt))

	b.angularVelocity += b.angularAcceleration * dt
	b.angularAcceleration = 0
	b.angle += b.angularVelocity * dt
}
