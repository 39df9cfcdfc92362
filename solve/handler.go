// Package solve implements the sequential-impulse contact handler (§4.3):
// for each contact, a velocity-level impulse pass followed by a single
// positional-correction pass. No friction, no warm-starting, no iterative
// position solving: one impulse per contact point and one positional-split
// correction per contact (see DESIGN.md).
package solve

import (
	"github.com/akmonengine/farm2d/contact"
	"github.com/akmonengine/farm2d/geom"
)

// positionalCorrectionFraction is the fraction of penetration depth removed
// per contact per tick (§4.3). It is the source's chosen value, not a
// tunable "slop" parameter.
const positionalCorrectionFraction = 0.5

// Handler resolves a list of Contacts, in order, against the bodies they
// reference. It holds no state between calls.
type Handler struct{}

// NewHandler returns a ready-to-use Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Resolve applies the impulse phase and then the positional-correction
// phase to every contact, in list order (§4.3, §4.4 ordering guarantee).
func (h *Handler) Resolve(contacts []contact.Contact) {
	for _, c := range contacts {
		resolveImpulses(c)
		applyPositionalCorrection(c)
	}
}

// resolveImpulses runs the velocity-level impulse phase for every contact
// point of c, sequentially: each point's impulse is computed and applied to
// both bodies' velocities before the next point is considered, matching the
// Non-goal that excludes warm-starting and multi-iteration solving.
func resolveImpulses(c contact.Contact) {
	a, b := c.A, c.B
	for _, p := range c.Points {
		rA := geom.PerpCW(p.Sub(a.Position()))
		rB := geom.PerpCW(p.Sub(b.Position()))

		velAatP := a.Velocity().Add(rA.Mul(a.AngularVelocity()))
		velBatP := b.Velocity().Add(rB.Mul(b.AngularVelocity()))
		relativeVelocity := velAatP.Sub(velBatP)

		smashingSpeed := relativeVelocity.Dot(c.Normal)
		if smashingSpeed <= 0 {
			continue
		}

		restitution := min(a.Restitution(), b.Restitution())

		rAdotN := rA.Dot(c.Normal)
		rBdotN := rB.Dot(c.Normal)
		denom := a.InvMass() + b.InvMass() +
			rAdotN*rAdotN*a.InvMomentOfInertia() +
			rBdotN*rBdotN*b.InvMomentOfInertia()

		j := (1 + restitution) * smashingSpeed / denom
		impulse := c.Normal.Mul(j)

		b.SetVelocity(b.Velocity().Add(impulse.Mul(b.InvMass())))
		a.SetVelocity(a.Velocity().Sub(impulse.Mul(a.InvMass())))
		b.SetAngularVelocity(b.AngularVelocity() + j*rBdotN*b.InvMomentOfInertia())
		a.SetAngularVelocity(a.AngularVelocity() - j*rAdotN*a.InvMomentOfInertia())
	}
}

// applyPositionalCorrection separates c's two bodies along the contact
// normal by positionalCorrectionFraction of the penetration depth, split by
// mass ratio (§4.3). The static/static case never reaches here (the
// reporter skips both-static pairs), but the single-static branches are
// intentionally asymmetric: this mirrors the source exactly (§9/DESIGN.md)
// rather than "fixing" it into a symmetric rule.
func applyPositionalCorrection(c contact.Contact) {
	a, b := c.A, c.B
	correction := c.Normal.Mul(c.Depth * positionalCorrectionFraction)

	switch {
	case a.IsStatic():
		b.SetPosition(b.Position().Add(correction.Mul(2)))
	case b.IsStatic():
		a.SetPosition(a.Position().Sub(correction))
	default:
		total := a.Mass() + b.Mass()
		a.SetPosition(a.Position().Sub(correction.Mul(b.Mass() / total)))
		b.SetPosition(b.Position().Add(correction.Mul(a.Mass() / total)))
	}
}
