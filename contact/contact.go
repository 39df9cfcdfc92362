// Package contact implements the narrow phase: turning a BodyPair into a
// Contact (or nothing) by dispatching on the concrete shape pair
// (circle/circle, circle/polygon, polygon/polygon) and running the
// Separating Axis Theorem, with Sutherland-Hodgman-style clipping to derive
// contact points for the polygon/polygon case (§4.2). Since the shape set
// is closed to circles and polygons, SAT gives exact, closed-form answers
// without an iterative simplex search or a generic Support()-based
// abstraction.
package contact

import (
	"github.com/akmonengine/farm2d/actor"
	"github.com/akmonengine/farm2d/geom"
)

// Contact is the output of the narrow phase for a single colliding pair
// (§3): a reference body A, an incident body B, a unit collision normal
// pointing from A toward B, a positive penetration depth, and 1 or 2
// world-space contact points. Contacts are recomputed from scratch every
// tick; there is no persistence across ticks.
type Contact struct {
	A      actor.Body
	B      actor.Body
	Normal geom.Vector2D
	Depth  float64
	Points []geom.Vector2D
}
