package contact

import (
	"log/slog"
	"math"

	"github.com/akmonengine/farm2d/actor"
	"github.com/akmonengine/farm2d/geom"
)

// Reporter is the narrow phase (§4.2): given the Farm's live BodyPairs, it
// produces the Contacts for the pairs that actually overlap this tick.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter builds a Reporter that logs degenerate cases (coincident
// circle centers) through logger.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// Report runs the narrow phase over pairs, skipping both-static pairs (a
// static body never needs a contact against another static body), and
// returns the contacts found, in pair order.
func (r *Reporter) Report(pairs []actor.BodyPair) []Contact {
	var contacts []Contact
	for _, pair := range pairs {
		if pair.BothStatic() {
			continue
		}
		if c, ok := r.report(pair.A, pair.B); ok {
			contacts = append(contacts, c)
		}
	}
	return contacts
}

// report dispatches on the concrete shape pair, the narrow phase's
// double-dispatch becoming a type switch (§4.2) now that shapes are closed
// to circle and polygon.
func (r *Reporter) report(a, b actor.Body) (Contact, bool) {
	switch av := a.(type) {
	case *actor.CircularBody:
		switch bv := b.(type) {
		case *actor.CircularBody:
			return circleCircle(av, bv, r.logger)
		case *actor.PolygonBody:
			return circlePolygon(av, bv)
		}
	case *actor.PolygonBody:
		switch bv := b.(type) {
		case *actor.CircularBody:
			return circlePolygon(bv, av)
		case *actor.PolygonBody:
			return polygonPolygon(av, bv)
		}
	}
	return Contact{}, false
}

// circleCircle is the trivial case: two disks overlap when the distance
// between centers is less than the sum of radii. A pair of exactly
// coincident centers has no well-defined normal; rather than guess a
// direction, this reports no contact and logs a warning (see DESIGN.md).
func circleCircle(a, b *actor.CircularBody, logger *slog.Logger) (Contact, bool) {
	delta := b.Position().Sub(a.Position())
	radiusSum := a.Radius + b.Radius
	d2 := delta.Dot(delta)
	if d2 >= radiusSum*radiusSum {
		return Contact{}, false
	}

	d := math.Sqrt(d2)
	if d == 0 {
		logger.Warn("coincident circle centers, skipping contact", "a", a.ID(), "b", b.ID())
		return Contact{}, false
	}

	normal := delta.Mul(1 / d)
	depth := radiusSum - d
	point := b.Position().Sub(normal.Mul(b.Radius))

	return Contact{
		A:      a,
		B:      b,
		Normal: normal,
		Depth:  depth,
		Points: []geom.Vector2D{point},
	}, true
}

// probe runs the polygon-side SAT axis test for p against other: for each of
// p's edge normals, the gap between the edge and other's closest point along
// that normal. If any gap is non-positive, that normal is a separating axis
// and the shapes do not overlap. Otherwise it returns the edge with the
// smallest positive gap, p's "best" axis (§4.2).
func probe(p *actor.PolygonBody, other actor.Body) (index int, depth float64, separated bool) {
	best := math.Inf(1)
	bestIndex := -1

	for i, n := range p.Normals {
		edgeCoord := p.Vertices[i].Dot(n)
		gap := edgeCoord - other.MinCoordinateAlong(n)
		if gap <= 0 {
			return 0, 0, true
		}
		if gap < best {
			best = gap
			bestIndex = i
		}
	}

	return bestIndex, best, false
}

// circlePolygon runs the polygon's SAT probe against the circle (the
// circle's only relevant extent along any axis is center-projection minus
// radius, which is exactly what CircularBody.MinCoordinateAlong gives), then
// derives the single contact point as the circle surface point closest to
// the polygon. The polygon is always the reference body A, matching the
// normal's direction: it points outward from the polygon, i.e. from A
// toward B.
func circlePolygon(circle *actor.CircularBody, polygon *actor.PolygonBody) (Contact, bool) {
	index, depth, separated := probe(polygon, circle)
	if separated {
		return Contact{}, false
	}

	normal := polygon.Normals[index]
	point := circle.Position().Sub(normal.Mul(circle.Radius))

	return Contact{
		A:      polygon,
		B:      circle,
		Normal: normal,
		Depth:  depth,
		Points: []geom.Vector2D{point},
	}, true
}

// polygonPolygon runs both polygons' SAT probes, picks the shallower as the
// reference face, and clips the incident polygon's corresponding edge
// against the reference face's side planes to recover up to two contact
// points (§4.2). A wins ties: it is only displaced as reference when b's
// probe depth is strictly smaller.
func polygonPolygon(a, b *actor.PolygonBody) (Contact, bool) {
	indexA, depthA, separatedA := probe(a, b)
	if separatedA {
		return Contact{}, false
	}
	indexB, depthB, separatedB := probe(b, a)
	if separatedB {
		return Contact{}, false
	}

	reference, incident := a, b
	refIndex, incIndex := indexA, indexB
	depth := depthA
	if depthB < depthA {
		reference, incident = b, a
		refIndex, incIndex = indexB, indexA
		depth = depthB
	}

	normal := reference.Normals[refIndex]
	points := clipIncidentEdge(reference, refIndex, incident, incIndex, normal)
	if len(points) == 0 {
		return Contact{}, false
	}

	return Contact{
		A:      reference,
		B:      incident,
		Normal: normal,
		Depth:  depth,
		Points: points,
	}, true
}

// clipIncidentEdge implements the Sutherland-Hodgman-style incident-edge
// clip (§4.2): the incident polygon's edge opposite its own best normal is
// clipped against the reference face's two side planes, then any point left
// on the non-penetrating side of the reference face itself is discarded (at
// most one, since a genuinely overlapping pair leaves at least one point).
func clipIncidentEdge(reference *actor.PolygonBody, refIndex int, incident *actor.PolygonBody, incIndex int, normal geom.Vector2D) []geom.Vector2D {
	rn := len(reference.Vertices)
	refLeft := reference.Vertices[refIndex]
	refRight := reference.Vertices[(refIndex+1)%rn]
	tangent := refRight.Sub(refLeft).Normalize()

	in := len(incident.Vertices)
	incLeft := incident.Vertices[incIndex]
	incRight := incident.Vertices[(incIndex+1)%in]

	p0, p1, ok := clipSegment(incLeft, incRight, tangent, refLeft.Dot(tangent))
	if !ok {
		return nil
	}
	p0, p1, ok = clipSegment(p0, p1, tangent.Mul(-1), -refRight.Dot(tangent))
	if !ok {
		return nil
	}

	negNormal := normal.Mul(-1)
	threshold := refLeft.Dot(negNormal)

	points := make([]geom.Vector2D, 0, 2)
	removed := false
	for _, p := range []geom.Vector2D{p0, p1} {
		if p.Dot(negNormal) < threshold && !removed {
			removed = true
			continue
		}
		points = append(points, p)
	}

	return points
}

// clipSegment keeps the portion of segment (v0, v1) on the side of the
// half-plane {p : sideNormal.Dot(p) >= offset}, replacing any endpoint on
// the wrong side with the point where the segment crosses the plane. ok is
// false only when both endpoints are on the wrong side, which leaves nothing
// to clip further.
func clipSegment(v0, v1, sideNormal geom.Vector2D, offset float64) (geom.Vector2D, geom.Vector2D, bool) {
	d0 := sideNormal.Dot(v0) - offset
	d1 := sideNormal.Dot(v1) - offset

	if d0 >= 0 && d1 >= 0 {
		return v0, v1, true
	}
	if d0 < 0 && d1 < 0 {
		return v0, v1, false
	}

	t := d0 / (d0 - d1)
	intersection := v0.Add(v1.Sub(v0).Mul(t))
	if d0 < 0 {
		return intersection, v1, true
	}
	return v0, intersection, true
}
