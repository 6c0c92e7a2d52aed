// pkg/aero/corrector.go
package aero

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/physics"
)

// Empirically tuned rates. These encode flight "feel" rather than physical
// law; they are exported so hosts can retune them.
const (
	// DefaultTurnYawRate couples bank angle to yaw rate in a banked turn.
	DefaultTurnYawRate = 0.8
	// DefaultTurnRollRate is the self-levelling rate of the bank angle.
	DefaultTurnRollRate = 0.5
	// DefaultStallRate scales the nose-down rotation at low airspeed.
	DefaultStallRate = 10.0
)

// Corrector produces the attitude and velocity adjustments that
// approximate a coordinated turn and a stall without solving the real
// flight equations. Stateless apart from its tuning rates; every method
// is deterministic in its inputs.
type Corrector struct {
	TurnYawRate  float64
	TurnRollRate float64
	StallRate    float64
}

// NewCorrector returns a corrector with the default tuning rates.
func NewCorrector() *Corrector {
	return &Corrector{
		TurnYawRate:  DefaultTurnYawRate,
		TurnRollRate: DefaultTurnRollRate,
		StallRate:    DefaultStallRate,
	}
}

// BankedTurnRotation advances the orientation one step of an approximate
// coordinated turn: the current bank angle drives a proportional yaw rate
// toward the bank direction and a proportional roll rate back toward
// level, while pitch is left untouched. This deliberately sidesteps the
// true bank equation (L·sinθ = m·v²/r).
func (c *Corrector) BankedTurnRotation(orientation mgl64.Quat, dt float64) mgl64.Quat {
	yaw, pitch, roll := physics.YawPitchRoll(orientation)
	yaw += c.TurnYawRate * roll * dt
	roll -= c.TurnRollRate * roll * dt
	return physics.FromYawPitchRoll(yaw, pitch, roll)
}

// DirectionalVelocity re-points velocity along the body's forward axis,
// preserving its magnitude. This models a gliding body whose velocity
// vector tracks its heading nearly instantly, in place of a side-slip
// calculation.
func (c *Corrector) DirectionalVelocity(orientation mgl64.Quat, velocity mgl64.Vec3) mgl64.Vec3 {
	return physics.Forward(orientation).Mul(velocity.Len())
}

// StallRotation rotates the body toward nose-down at a rate inversely
// proportional to airspeed squared, via a damped interpolation whose
// fraction is |rate|*dt clamped to [0, 1]. Empirical stall behavior, not
// first-principles; the host invokes it below its stall-speed threshold.
func (c *Corrector) StallRotation(orientation mgl64.Quat, airspeed, dt float64) mgl64.Quat {
	if dt <= 0 {
		return orientation
	}
	rate := c.StallRate / (airspeed * airspeed) // +Inf at zero airspeed, clamped below
	frac := math.Abs(rate) * dt
	if frac > 1 {
		frac = 1
	}
	return mgl64.QuatNlerp(orientation, physics.NoseDown(orientation), frac)
}
