// pkg/engine/simulation.go
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-glider/pkg/aero"
	"github.com/opd-ai/go-glider/pkg/config"
	"github.com/opd-ai/go-glider/pkg/entity"
	"github.com/opd-ai/go-glider/pkg/event"
)

// Simulation owns the world of glider bodies and drives the aerodynamic
// model over them at a fixed tick rate. It is the host side of the model:
// the core in pkg/aero stays a pure input->output computation, and this
// layer applies its results to the bodies it owns.
type Simulation struct {
	Config      *config.SimConfig
	EventBus    *event.Bus
	EntityLock  sync.RWMutex
	TimeStep    float64 // seconds per tick
	CurrentTick uint64

	world   *ecs.World
	aero    *AeroSystem
	gliders map[uint64]*entity.Glider
}

// NewSimulation creates a simulation from a configuration, including one
// glider per configured entry.
func NewSimulation(cfg *config.SimConfig) *Simulation {
	bus := event.NewEventBus()

	corrector := &aero.Corrector{
		TurnYawRate:  cfg.Tuning.TurnYawRate,
		TurnRollRate: cfg.Tuning.TurnRollRate,
		StallRate:    cfg.Tuning.StallRate,
	}

	sim := &Simulation{
		Config:   cfg,
		EventBus: bus,
		TimeStep: 1.0 / cfg.Simulation.TickRate,
		world:    &ecs.World{},
		gliders:  make(map[uint64]*entity.Glider),
		aero: NewAeroSystem(
			corrector,
			cfg.Environment.AirDensity,
			cfg.Environment.Gravity,
			cfg.Simulation.StallSpeed,
			bus,
		),
	}
	sim.world.AddSystem(sim.aero)

	for _, gc := range cfg.Gliders {
		g := sim.AddGlider(gc.Name, gc.Stats())
		g.Kinematic = gc.Kinematic
	}

	return sim
}

// AddGlider creates a glider, registers it with the world and returns it.
func (s *Simulation) AddGlider(name string, stats entity.GliderStats) *entity.Glider {
	s.EntityLock.Lock()
	g := entity.NewGlider(name, stats)
	s.gliders[g.ID()] = g
	s.aero.Add(g)
	s.EntityLock.Unlock()

	s.EventBus.Publish(event.NewGliderEvent(event.GliderAdded, s, g.ID(), name))
	return g
}

// RemoveGlider takes a glider out of the simulation.
func (s *Simulation) RemoveGlider(g *entity.Glider) {
	s.EntityLock.Lock()
	if _, ok := s.gliders[g.ID()]; !ok {
		s.EntityLock.Unlock()
		return
	}
	delete(s.gliders, g.ID())
	s.world.RemoveEntity(g.BasicEntity)
	s.EntityLock.Unlock()

	s.EventBus.Publish(event.NewGliderEvent(event.GliderRemoved, s, g.ID(), g.Name))
}

// Gliders returns a snapshot of the current bodies.
func (s *Simulation) Gliders() []*entity.Glider {
	s.EntityLock.RLock()
	defer s.EntityLock.RUnlock()

	out := make([]*entity.Glider, 0, len(s.gliders))
	for _, g := range s.gliders {
		out = append(out, g)
	}
	return out
}

// SetWingExposure changes a glider's wing posture. This is the entry
// point for whatever controller (input, animation, AI) decides posture;
// the clamping of zero values happens inside the wing itself.
func (s *Simulation) SetWingExposure(g *entity.Glider, left, right float64) {
	s.EntityLock.Lock()
	g.Wing.SetExposure(left, right)
	s.EntityLock.Unlock()

	s.EventBus.Publish(event.NewWingsEvent(s, g.ID(), g.Wing.LeftExposure(), g.Wing.RightExposure()))
}

// Sample returns the last aerodynamic sample computed for a glider.
func (s *Simulation) Sample(g *entity.Glider) (aero.Sample, bool) {
	s.EntityLock.RLock()
	defer s.EntityLock.RUnlock()
	return s.aero.LastSample(g.ID())
}

// Update advances the simulation by one tick of the given duration.
func (s *Simulation) Update(deltaTime float64) {
	s.EntityLock.Lock()
	defer s.EntityLock.Unlock()

	s.world.Update(float32(deltaTime))
	s.CurrentTick++
}

// Run drives Update on a fixed-rate ticker until the context is
// cancelled. The tick duration is the configured time step regardless of
// wall-clock jitter, which keeps the model deterministic.
func (s *Simulation) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) * s.TimeStep))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Update(s.TimeStep)
		}
	}
}
