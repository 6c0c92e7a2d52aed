// Package entity defines the simulated bodies the engine drives.
package entity

import (
	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/aero"
	"github.com/opd-ai/go-glider/pkg/physics"
)

// GliderStats contains the construction parameters for a glider body.
type GliderStats struct {
	Mass float64
	Wing aero.WingStats
}

// Glider is a gliding rigid body: one pair of wings plus the kinematic
// state the aerodynamic model reads and writes each tick. Mass and the
// integration of velocity into position live here; the force and attitude
// math lives in pkg/aero.
type Glider struct {
	ecs.BasicEntity

	Name        string
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat
	Mass        float64
	// Kinematic bodies are observed but never moved by the engine.
	Kinematic bool

	Wing *aero.Wing
}

// NewGlider creates a glider at the origin, level, at rest, with wings
// fully open.
func NewGlider(name string, stats GliderStats) *Glider {
	return &Glider{
		BasicEntity: ecs.NewBasic(),
		Name:        name,
		Orientation: mgl64.QuatIdent(),
		Mass:        stats.Mass,
		Wing:        aero.NewWing(stats.Wing),
	}
}

// ApplyImpulse adds an impulse (force already scaled by the tick duration)
// to the body's velocity. Bodies without mass take the impulse as a raw
// velocity change.
func (g *Glider) ApplyImpulse(impulse mgl64.Vec3) {
	if g.Mass > 0 {
		g.Velocity = g.Velocity.Add(impulse.Mul(1.0 / g.Mass))
	} else {
		g.Velocity = g.Velocity.Add(impulse)
	}
}

// Update integrates position from velocity for one tick.
func (g *Glider) Update(deltaTime float64) {
	g.Position = g.Position.Add(g.Velocity.Mul(deltaTime))
}

// Forward returns the body's forward axis.
func (g *Glider) Forward() mgl64.Vec3 {
	return physics.Forward(g.Orientation)
}

// Airspeed returns the magnitude of the body's velocity. True relative
// air velocity would subtract wind; wind is out of scope, so linear
// velocity stands in for it.
func (g *Glider) Airspeed() float64 {
	return g.Velocity.Len()
}
