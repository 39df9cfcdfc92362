package solve

import (
	"math"
	"testing"

	"github.com/akmonengine/farm2d/actor"
	"github.com/akmonengine/farm2d/contact"
	"github.com/akmonengine/farm2d/geom"
)

func squareBody(t *testing.T, x, y float64, static bool) *actor.PolygonBody {
	t.Helper()
	return squareBodyWithRestitution(t, x, y, static, actor.DefaultRestitution)
}

func squareBodyWithRestitution(t *testing.T, x, y float64, static bool, restitution float64) *actor.PolygonBody {
	t.Helper()
	seed := actor.NewSeed()
	seed.Position = geom.New(x, y)
	seed.Restitution = restitution
	seed.RelativeVertices = []geom.Vector2D{
		geom.New(-1, -1),
		geom.New(-1, 1),
		geom.New(1, 1),
		geom.New(1, -1),
	}
	if static {
		seed.Static = true
	} else {
		seed.Density = 1
	}
	body, err := actor.NewPolygonBody(seed)
	if err != nil {
		t.Fatalf("NewPolygonBody() error = %v", err)
	}
	return body
}

// TestResolve_RestingContactAppliesNoImpulseButCorrectsPosition matches the
// spec's concrete scenario 3: two unit squares (mass 4 each, e=0.5), A at
// (0,0), B at (1.5,0), overlapping by 0.5 along x, both at rest. Zero
// relative velocity means smashingSpeed is 0, so no impulse is applied; the
// positional correction moves each body by 0.125 along the normal.
func TestResolve_RestingContactAppliesNoImpulseButCorrectsPosition(t *testing.T) {
	a := squareBody(t, 0, 0, false)
	b := squareBody(t, 1.5, 0, false)

	c := contact.Contact{
		A:      a,
		B:      b,
		Normal: geom.New(1, 0),
		Depth:  0.5,
		Points: []geom.Vector2D{geom.New(1, 0.5), geom.New(1, -0.5)},
	}

	NewHandler().Resolve([]contact.Contact{c})

	if a.Velocity() != geom.Zero || b.Velocity() != geom.Zero {
		t.Errorf("velocities changed for a resting contact: a=%v b=%v", a.Velocity(), b.Velocity())
	}

	wantAx := -0.125
	wantBx := 1.5 + 0.125
	if math.Abs(a.Position().X()-wantAx) > 1e-9 {
		t.Errorf("A.Position().X() = %v, want %v", a.Position().X(), wantAx)
	}
	if math.Abs(b.Position().X()-wantBx) > 1e-9 {
		t.Errorf("B.Position().X() = %v, want %v", b.Position().X(), wantBx)
	}
}

// TestResolve_StaticBodyPositionAsymmetry_AStatic pins down the §9 decision: when A
// is static, B is pushed out by the FULL depth (2*correction), not the
// mass-weighted split used when neither body is static.
func TestResolve_StaticBodyPositionAsymmetry_AStatic(t *testing.T) {
	a := squareBody(t, 0, 0, true)
	b := squareBody(t, 1.5, 0, false)

	c := contact.Contact{
		A:      a,
		B:      b,
		Normal: geom.New(1, 0),
		Depth:  0.5,
		Points: []geom.Vector2D{geom.New(1, 0)},
	}

	NewHandler().Resolve([]contact.Contact{c})

	if a.Position() != geom.New(0, 0) {
		t.Errorf("static A moved: %v", a.Position())
	}
	wantBx := 1.5 + 0.5 // full depth, not half
	if math.Abs(b.Position().X()-wantBx) > 1e-9 {
		t.Errorf("B.Position().X() = %v, want %v", b.Position().X(), wantBx)
	}
}

func TestResolve_StaticBodyPositionAsymmetry_BStatic(t *testing.T) {
	a := squareBody(t, 0, 0, false)
	b := squareBody(t, 1.5, 0, true)

	c := contact.Contact{
		A:      a,
		B:      b,
		Normal: geom.New(1, 0),
		Depth:  0.5,
		Points: []geom.Vector2D{geom.New(1, 0)},
	}

	NewHandler().Resolve([]contact.Contact{c})

	if b.Position() != geom.New(1.5, 0) {
		t.Errorf("static B moved: %v", b.Position())
	}
	wantAx := -0.25 // half depth only
	if math.Abs(a.Position().X()-wantAx) > 1e-9 {
		t.Errorf("A.Position().X() = %v, want %v", a.Position().X(), wantAx)
	}
}

// TestResolve_SeparatingContactSkipsImpulse matches §4.3: when smashingSpeed
// is <= 0 (bodies moving apart, or tangent), the impulse phase applies
// nothing for that contact point.
func TestResolve_SeparatingContactSkipsImpulse(t *testing.T) {
	a := squareBody(t, 0, 0, false)
	b := squareBody(t, 1.5, 0, false)
	a.SetVelocity(geom.New(-1, 0))
	b.SetVelocity(geom.New(1, 0))

	c := contact.Contact{
		A:      a,
		B:      b,
		Normal: geom.New(1, 0),
		Depth:  0.5,
		Points: []geom.Vector2D{geom.New(1, 0)},
	}

	NewHandler().Resolve([]contact.Contact{c})

	if a.Velocity() != geom.New(-1, 0) || b.Velocity() != geom.New(1, 0) {
		t.Errorf("velocities changed for a separating contact: a=%v b=%v", a.Velocity(), b.Velocity())
	}
}

// TestResolve_HeadOnApproachBounces checks the linear, no-rotation case
// against the closed-form elastic-collision result: two equal-mass bodies
// approaching head-on along the normal with a contact point at the center
// line (rA and rB are perpendicular to the normal, so rA·n = rB·n = 0 and
// there is no angular coupling) exchange their along-normal
// velocity components exactly, for restitution 1.
func TestResolve_HeadOnApproachBounces(t *testing.T) {
	a := squareBodyWithRestitution(t, 0, 0, false, 1)
	b := squareBodyWithRestitution(t, 2, 0, false, 1)
	a.SetVelocity(geom.New(2, 0))
	b.SetVelocity(geom.New(-2, 0))

	c := contact.Contact{
		A:      a,
		B:      b,
		Normal: geom.New(1, 0),
		Depth:  0.001,
		Points: []geom.Vector2D{geom.New(1, 0)},
	}

	NewHandler().Resolve([]contact.Contact{c})

	if math.Abs(a.Velocity().X()-(-2)) > 1e-9 {
		t.Errorf("A.Velocity().X() = %v, want -2", a.Velocity().X())
	}
	if math.Abs(b.Velocity().X()-2) > 1e-9 {
		t.Errorf("B.Velocity().X() = %v, want 2", b.Velocity().X())
	}
}
