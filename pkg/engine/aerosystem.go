// pkg/engine/aerosystem.go
package engine

import (
	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/aero"
	"github.com/opd-ai/go-glider/pkg/entity"
	"github.com/opd-ai/go-glider/pkg/event"
)

// AeroSystem drives the aerodynamic model over every registered glider,
// one evaluation per tick, and applies the results back onto the bodies:
// the banked-turn orientation overwrite, the heading-tracking velocity
// blend, the lift and drag impulses, the stall rotation at low airspeed,
// then gravity and position integration.
type AeroSystem struct {
	gliders    []*entity.Glider
	evaluators map[uint64]*aero.Evaluator
	stalled    map[uint64]bool

	corrector  *aero.Corrector
	airDensity float64
	gravity    float64
	stallSpeed float64

	bus *event.Bus
}

// NewAeroSystem creates a system with the given environment constants and
// corrector tuning.
func NewAeroSystem(corrector *aero.Corrector, airDensity, gravity, stallSpeed float64, bus *event.Bus) *AeroSystem {
	return &AeroSystem{
		evaluators: make(map[uint64]*aero.Evaluator),
		stalled:    make(map[uint64]bool),
		corrector:  corrector,
		airDensity: airDensity,
		gravity:    gravity,
		stallSpeed: stallSpeed,
		bus:        bus,
	}
}

// Add registers a glider with the system.
func (a *AeroSystem) Add(g *entity.Glider) {
	a.gliders = append(a.gliders, g)
	a.evaluators[g.ID()] = aero.NewEvaluator()
}

// Remove unregisters a glider. Part of the ecs.System interface.
func (a *AeroSystem) Remove(basic ecs.BasicEntity) {
	for i, g := range a.gliders {
		if g.ID() == basic.ID() {
			a.gliders = append(a.gliders[:i], a.gliders[i+1:]...)
			break
		}
	}
	delete(a.evaluators, basic.ID())
	delete(a.stalled, basic.ID())
}

// LastSample returns the most recent aerodynamic sample for a glider, if
// one has been computed.
func (a *AeroSystem) LastSample(gliderID uint64) (aero.Sample, bool) {
	ev, ok := a.evaluators[gliderID]
	if !ok {
		return aero.Sample{}, false
	}
	return ev.Last()
}

// Update advances every glider by one tick. Part of the ecs.System
// interface, hence the float32 delta.
func (a *AeroSystem) Update(dt float32) {
	deltaTime := float64(dt)
	for _, g := range a.gliders {
		a.step(g, deltaTime)
	}
}

func (a *AeroSystem) step(g *entity.Glider, dt float64) {
	// Linear velocity stands in for relative air velocity; wind is out
	// of scope. A zero velocity skips the evaluation entirely.
	sample, ok := a.evaluators[g.ID()].Evaluate(g.Velocity, g.Orientation, g.Wing, a.airDensity)

	if g.Kinematic {
		return
	}

	if ok {
		g.Orientation = a.corrector.BankedTurnRotation(g.Orientation, dt)

		target := a.corrector.DirectionalVelocity(g.Orientation, g.Velocity)
		blend := dt
		if blend > 1 {
			blend = 1
		}
		g.Velocity = g.Velocity.Add(target.Sub(g.Velocity).Mul(blend))

		g.ApplyImpulse(sample.LiftVector.Mul(dt))
		g.ApplyImpulse(sample.DragVector.Mul(dt))
	}

	a.applyStall(g, dt)

	g.Velocity = g.Velocity.Add(mgl64.Vec3{0, -a.gravity, 0}.Mul(dt))
	g.Update(dt)
}

func (a *AeroSystem) applyStall(g *entity.Glider, dt float64) {
	airspeed := g.Airspeed()
	stalled := airspeed < a.stallSpeed

	if stalled {
		g.Orientation = a.corrector.StallRotation(g.Orientation, airspeed, dt)
	}

	if stalled != a.stalled[g.ID()] {
		a.stalled[g.ID()] = stalled
		if a.bus == nil {
			return
		}
		eventType := event.StallExited
		if stalled {
			eventType = event.StallEntered
		}
		a.bus.Publish(event.NewStallEvent(eventType, a, g.ID(), airspeed))
	}
}
