package actor

import "github.com/google/uuid"

// BodyPair is an unordered 2-tuple of distinct live bodies (§3). The Farm
// keeps exactly one BodyPair per unordered pair of currently-live bodies,
// created/removed in lockstep with body creation/removal (§4.4).
type BodyPair struct {
	ID uuid.UUID

	A Body
	B Body
}

// NewBodyPair builds a BodyPair for a and b, which must be distinct.
func NewBodyPair(a, b Body) BodyPair {
	return BodyPair{ID: uuid.New(), A: a, B: b}
}

// Contains reports whether x is one of the pair's two bodies.
func (p BodyPair) Contains(x Body) bool {
	return p.A == x || p.B == x
}

// BothStatic reports whether both bodies in the pair are static; the
// contact reporter skips such pairs entirely (§4.2).
func (p BodyPair) BothStatic() bool {
	return p.A.IsStatic() && p.B.IsStatic()
}
