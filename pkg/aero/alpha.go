// pkg/aero/alpha.go
package aero

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/physics"
)

// AngleOfAttack returns the angle, in degrees, between the body's chord
// line and the oncoming airflow. The airflow frame is the one obtained by
// looking along velocity; at zero velocity the world up axis is used
// instead, which reads as flying level and keeps the value continuous for
// observers even though the angle is physically meaningless at zero speed.
//
// The asin argument is a dot product of unit vectors, but round-off can
// push it fractionally outside [-1, 1] and turn the result into NaN. NaN
// would poison every downstream force value, so it is coerced to 0.
func AngleOfAttack(orientation mgl64.Quat, velocity mgl64.Vec3) float64 {
	up := physics.WorldUp
	if velocity.Len() > 0 {
		up = physics.Up(physics.LookAlong(velocity, physics.WorldUp))
	}

	forward := physics.Forward(orientation)
	deg := mgl64.RadToDeg(math.Asin(forward.Dot(up)))
	if math.IsNaN(deg) {
		return 0
	}
	return deg
}
