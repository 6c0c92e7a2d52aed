// pkg/physics/frame.go
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Coordinate convention: right-handed, +Y up, body forward is -Z.

var (
	// WorldUp is the global up axis.
	WorldUp = mgl64.Vec3{0, 1, 0}
	// WorldDown is the global down axis.
	WorldDown = mgl64.Vec3{0, -1, 0}
	// WorldForward is the global forward axis (-Z).
	WorldForward = mgl64.Vec3{0, 0, -1}
)

const parallelEpsilon = 1e-9

// Forward returns the body forward axis for an orientation.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, -1})
}

// Up returns the body up axis for an orientation.
func Up(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 1, 0})
}

// Right returns the body right axis for an orientation.
func Right(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{1, 0, 0})
}

// Back returns the body backward axis for an orientation.
func Back(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, 1})
}

// LookAlong returns the orientation whose forward axis points along dir,
// with its up axis chosen as close to upHint as the direction allows.
// When dir is (near-)parallel to upHint the world forward axis is used as
// the reference instead, so the result is always a valid orthonormal frame.
// A zero dir returns the identity orientation.
func LookAlong(dir, upHint mgl64.Vec3) mgl64.Quat {
	if dir.Len() < parallelEpsilon {
		return mgl64.QuatIdent()
	}
	fwd := dir.Normalize()

	right := fwd.Cross(upHint)
	if right.Len() < parallelEpsilon {
		right = fwd.Cross(WorldForward)
	}
	right = right.Normalize()
	up := right.Cross(fwd)

	m := mgl64.Mat3FromCols(right, up, fwd.Mul(-1))
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// FromYawPitchRoll composes an orientation from yaw (about +Y), pitch
// (about +X) and roll (about +Z), applied in that order. Angles in radians.
func FromYawPitchRoll(yaw, pitch, roll float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0})).
		Mul(mgl64.QuatRotate(roll, mgl64.Vec3{0, 0, 1})).
		Normalize()
}

// YawPitchRoll decomposes an orientation into the yaw/pitch/roll angles
// that FromYawPitchRoll would recompose into the same rotation. At the
// pitch singularity (nose straight up or down) roll is reported as zero.
func YawPitchRoll(q mgl64.Quat) (yaw, pitch, roll float64) {
	m := q.Normalize().Mat4()

	// With M = Ry(yaw)*Rx(pitch)*Rz(roll), M[1][2] = -sin(pitch).
	sp := -m.At(1, 2)
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}
	pitch = math.Asin(sp)

	if math.Abs(sp) > 1-1e-9 {
		// Gimbal lock: only yaw+roll is observable, attribute it all to yaw.
		yaw = math.Atan2(-m.At(2, 0), m.At(0, 0))
		roll = 0
		return yaw, pitch, roll
	}

	yaw = math.Atan2(m.At(0, 2), m.At(2, 2))
	roll = math.Atan2(m.At(1, 0), m.At(1, 1))
	return yaw, pitch, roll
}

// NoseDown returns the orientation looking straight down while preserving
// the heading of q. When q already points straight up or down the heading
// is undefined and world forward is used as the reference.
func NoseDown(q mgl64.Quat) mgl64.Quat {
	heading := Forward(q)
	heading[1] = 0
	if heading.Len() < parallelEpsilon {
		heading = WorldForward
	}
	return LookAlong(WorldDown, heading.Normalize())
}
