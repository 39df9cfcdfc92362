// Package farm2d is the root package: Farm owns the live bodies and pairs
// and drives one tick of simulation (integrate -> report -> resolve), a
// single-pass 2D sequential-impulse loop with no gravity field, no broad
// phase, no sleep/event system and no worker-pool fan-out (see DESIGN.md).
package farm2d

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/akmonengine/farm2d/actor"
	"github.com/akmonengine/farm2d/contact"
	"github.com/akmonengine/farm2d/solve"
)

// Farm owns every live Body and the BodyPair for every unordered pair of
// them, and advances them through time one tick at a time (§4.4).
type Farm struct {
	logger *slog.Logger

	bodies []actor.Body
	pairs  []actor.BodyPair

	reporter *contact.Reporter
	handler  *solve.Handler
}

// NewFarm returns an empty Farm. A nil logger falls back to slog.Default().
func NewFarm(logger *slog.Logger) *Farm {
	if logger == nil {
		logger = slog.Default()
	}
	return &Farm{
		logger:   logger,
		reporter: contact.NewReporter(logger),
		handler:  solve.NewHandler(),
	}
}

// GrowCircular builds a CircularBody from seed, pairs it against every
// currently-live body, and adds it to the Farm (§4.4).
func (f *Farm) GrowCircular(seed actor.Seed) (*actor.CircularBody, error) {
	body, err := actor.NewCircularBody(seed)
	if err != nil {
		return nil, err
	}
	f.grow(body)
	return body, nil
}

// GrowPolygon builds a PolygonBody from seed, pairs it against every
// currently-live body, and adds it to the Farm (§4.4).
func (f *Farm) GrowPolygon(seed actor.Seed) (*actor.PolygonBody, error) {
	body, err := actor.NewPolygonBody(seed)
	if err != nil {
		return nil, err
	}
	f.grow(body)
	return body, nil
}

func (f *Farm) grow(body actor.Body) {
	for _, existing := range f.bodies {
		f.pairs = append(f.pairs, actor.NewBodyPair(existing, body))
	}
	f.bodies = append(f.bodies, body)
}

// RemoveBody removes body from the Farm along with every pair that
// references it (§4.4).
func (f *Farm) RemoveBody(body actor.Body) {
	for i, b := range f.bodies {
		if b == body {
			f.bodies = append(f.bodies[:i], f.bodies[i+1:]...)
			break
		}
	}

	remaining := f.pairs[:0]
	for _, pair := range f.pairs {
		if !pair.Contains(body) {
			remaining = append(remaining, pair)
		}
	}
	f.pairs = remaining
}

// Bodies returns the Farm's current bodies. The returned slice is owned by
// the Farm and must not be retained or mutated by the caller.
func (f *Farm) Bodies() []actor.Body { return f.bodies }

// Update advances the simulation by dt: integrate all bodies, report
// contacts over all pairs, then resolve those contacts in pair order
// (§4.4, §5). Invalid dt returns an error rather than corrupting state.
func (f *Farm) Update(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		f.logger.Warn("farm2d: invalid dt", "dt", dt)
		return fmt.Errorf("farm2d: dt must be finite and positive, got %v", dt)
	}

	integrate(f.bodies, dt)
	contacts := f.reporter.Report(f.pairs)
	f.handler.Resolve(contacts)

	f.logger.Debug("farm2d: tick complete", "bodies", len(f.bodies), "contacts", len(contacts))
	return nil
}
