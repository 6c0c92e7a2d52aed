// pkg/aero/evaluator.go
package aero

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/physics"
)

// dragSlope is the quadratic coefficient of the empirical drag polar
// Cd = dragSlope*aoa^2 + baseDrag, with aoa in degrees.
const dragSlope = 0.0039

// Sample is the aerodynamic state computed for one simulation tick. It is
// entirely derived from that tick's velocity and orientation plus the
// current wing geometry, and is overwritten wholesale on the next tick.
type Sample struct {
	Airspeed        float64
	AngleOfAttack   float64 // degrees
	LiftCoefficient float64
	DragCoefficient float64
	LiftForce       float64
	InducedDrag     float64
	FormDrag        float64
	LiftVector      mgl64.Vec3
	DragVector      mgl64.Vec3
}

// Evaluator derives lift and drag forces from relative air velocity and
// orientation. It is a pure function of its inputs; the only state it
// keeps is the last computed sample, retained for external readout.
type Evaluator struct {
	last  Sample
	valid bool
}

// NewEvaluator returns an evaluator with no sample yet.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Last returns the most recent sample and whether one has been computed.
func (e *Evaluator) Last() (Sample, bool) {
	return e.last, e.valid
}

// Evaluate computes the aerodynamic sample for the current tick and
// retains it. Angle of attack and the force formulas are undefined at
// zero airspeed, so a zero airVelocity leaves the previous sample in
// place and returns ok=false; every other input produces a fully
// populated sample and ok=true.
//
// Stage order matters: angle of attack feeds the coefficients, the
// coefficients feed the force magnitudes, the magnitudes feed the
// vectors.
func (e *Evaluator) Evaluate(airVelocity mgl64.Vec3, orientation mgl64.Quat, wing *Wing, airDensity float64) (Sample, bool) {
	airspeed := airVelocity.Len()
	if airspeed == 0 {
		return e.last, false
	}

	var s Sample
	s.Airspeed = airspeed
	s.AngleOfAttack = AngleOfAttack(orientation, airVelocity)

	// Thin-airfoil linear lift slope, deliberately without a stall
	// cutoff or aspect-ratio correction to the coefficient itself.
	s.LiftCoefficient = 2 * math.Pi * s.AngleOfAttack * (math.Pi / 180)
	s.DragCoefficient = dragSlope*s.AngleOfAttack*s.AngleOfAttack + wing.BaseDrag

	area := wing.ExposedArea()
	dynamic := airspeed * airspeed * airDensity

	s.LiftForce = dynamic * area * s.LiftCoefficient
	s.FormDrag = 0.5 * dynamic * area * s.DragCoefficient
	s.InducedDrag = s.LiftForce * s.LiftForce /
		(0.5 * dynamic * area * math.Pi * wing.Efficiency * wing.AspectRatio())

	flow := physics.LookAlong(airVelocity, physics.WorldUp)
	if s.LiftForce != 0 {
		s.LiftVector = physics.Up(flow).Mul(s.LiftForce)
	} else {
		s.LiftVector = mgl64.Vec3{}
	}
	s.DragVector = physics.Back(flow).Mul(s.FormDrag + s.InducedDrag)

	e.last = s
	e.valid = true
	return s, true
}
