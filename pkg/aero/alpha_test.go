// pkg/aero/alpha_test.go
package aero

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-glider/pkg/physics"
)

func TestAngleOfAttack(t *testing.T) {
	forward10 := physics.WorldForward.Mul(10)

	tests := []struct {
		name        string
		orientation mgl64.Quat
		velocity    mgl64.Vec3
		want        float64 // degrees
	}{
		{"level flight", mgl64.QuatIdent(), forward10, 0},
		{"nose up 5 deg", physics.FromYawPitchRoll(0, mgl64.DegToRad(5), 0), forward10, 5},
		{"nose up 15 deg", physics.FromYawPitchRoll(0, mgl64.DegToRad(15), 0), forward10, 15},
		{"nose down 8 deg", physics.FromYawPitchRoll(0, mgl64.DegToRad(-8), 0), forward10, -8},
		{"independent of speed", physics.FromYawPitchRoll(0, mgl64.DegToRad(5), 0), physics.WorldForward.Mul(0.25), 5},
		{"zero velocity uses world up", physics.FromYawPitchRoll(0, mgl64.DegToRad(30), 0), mgl64.Vec3{}, 30},
		{"zero velocity level", mgl64.QuatIdent(), mgl64.Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleOfAttack(tt.orientation, tt.velocity)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleOfAttack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleOfAttack_NeverNaN(t *testing.T) {
	// Orientations whose forward axis aligns exactly with the flow-frame
	// up axis push the asin argument to the edge of its domain, where
	// round-off can nudge it outside and asin returns NaN.
	tests := []struct {
		name        string
		orientation mgl64.Quat
		velocity    mgl64.Vec3
	}{
		{"nose straight up, level flow", physics.FromYawPitchRoll(0, math.Pi/2, 0), physics.WorldForward.Mul(10)},
		{"nose straight down, level flow", physics.FromYawPitchRoll(0, -math.Pi/2, 0), physics.WorldForward.Mul(10)},
		{"nose up, zero velocity", physics.FromYawPitchRoll(0, math.Pi/2, 0), mgl64.Vec3{}},
		{"arbitrary attitude, arbitrary flow", physics.FromYawPitchRoll(1.1, 0.9, -0.7), mgl64.Vec3{3, -2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleOfAttack(tt.orientation, tt.velocity)
			if math.IsNaN(got) {
				t.Fatal("AngleOfAttack() returned NaN")
			}
			if got < -90-1e-9 || got > 90+1e-9 {
				t.Errorf("AngleOfAttack() = %v, outside [-90, 90]", got)
			}
		})
	}
}
