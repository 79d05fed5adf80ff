// Package spatialmath defines the spatial mathematical types describing a
// robot's kinematic state: euler orientations, rotation matrices, TCP poses,
// and angular velocities.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/robotstate/utils"
)

// Valid intervals for ZYX euler angles. Yaw and roll cover the full circle
// while pitch is restricted to a half circle so that every orientation has a
// single representation.
const (
	YawMin   = -math.Pi
	YawMax   = math.Pi
	PitchMin = -math.Pi / 2
	PitchMax = math.Pi / 2
	RollMin  = -math.Pi
	RollMax  = math.Pi
)

// EulerAngles represents an orientation as successive intrinsic rotations
// about the body Z (yaw), then Y (pitch), then X (roll) axes, in radians.
// The fields are unexported so that every write goes through validation; a
// constructed EulerAngles always holds in-range values.
type EulerAngles struct {
	yaw, pitch, roll float64
}

// NewEulerAngles creates a validated set of ZYX euler angles from radians.
func NewEulerAngles(yaw, pitch, roll float64) (*EulerAngles, error) {
	if err := validateAngles(yaw, pitch, roll); err != nil {
		return nil, err
	}
	return &EulerAngles{yaw: yaw, pitch: pitch, roll: roll}, nil
}

// NewEulerAnglesFromDegrees creates a validated set of ZYX euler angles from
// degrees, with yaw and roll in [-180, 180] and pitch in [-90, 90]. The range
// check happens in degrees; the converted radians are clamped to the radian
// bounds since the conversion of an extreme value can land an ulp outside
// them.
func NewEulerAnglesFromDegrees(yaw, pitch, roll float64) (*EulerAngles, error) {
	var err error
	if yaw < -180 || yaw > 180 {
		err = multierr.Append(err, NewAngleOutOfRangeError("yaw", yaw, -180, 180))
	}
	if pitch < -90 || pitch > 90 {
		err = multierr.Append(err, NewAngleOutOfRangeError("pitch", pitch, -90, 90))
	}
	if roll < -180 || roll > 180 {
		err = multierr.Append(err, NewAngleOutOfRangeError("roll", roll, -180, 180))
	}
	if err != nil {
		return nil, err
	}
	return &EulerAngles{
		yaw:   clamp(utils.DegToRad(yaw), YawMin, YawMax),
		pitch: clamp(utils.DegToRad(pitch), PitchMin, PitchMax),
		roll:  clamp(utils.DegToRad(roll), RollMin, RollMax),
	}, nil
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// NewZeroEulerAngles returns an orientation which signifies no rotation.
func NewZeroEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

func validateAngles(yaw, pitch, roll float64) error {
	var err error
	if yaw < YawMin || yaw > YawMax {
		err = multierr.Append(err, NewAngleOutOfRangeError("yaw", yaw, YawMin, YawMax))
	}
	if pitch < PitchMin || pitch > PitchMax {
		err = multierr.Append(err, NewAngleOutOfRangeError("pitch", pitch, PitchMin, PitchMax))
	}
	if roll < RollMin || roll > RollMax {
		err = multierr.Append(err, NewAngleOutOfRangeError("roll", roll, RollMin, RollMax))
	}
	return err
}

// Yaw returns the rotation about the Z axis in radians.
func (ea *EulerAngles) Yaw() float64 { return ea.yaw }

// Pitch returns the rotation about the once-rotated Y axis in radians.
func (ea *EulerAngles) Pitch() float64 { return ea.pitch }

// Roll returns the rotation about the twice-rotated X axis in radians.
func (ea *EulerAngles) Roll() float64 { return ea.roll }

// SetYaw sets the yaw angle in radians, revalidating its range.
func (ea *EulerAngles) SetYaw(yaw float64) error {
	if yaw < YawMin || yaw > YawMax {
		return NewAngleOutOfRangeError("yaw", yaw, YawMin, YawMax)
	}
	ea.yaw = yaw
	return nil
}

// SetPitch sets the pitch angle in radians, revalidating its range.
func (ea *EulerAngles) SetPitch(pitch float64) error {
	if pitch < PitchMin || pitch > PitchMax {
		return NewAngleOutOfRangeError("pitch", pitch, PitchMin, PitchMax)
	}
	ea.pitch = pitch
	return nil
}

// SetRoll sets the roll angle in radians, revalidating its range.
func (ea *EulerAngles) SetRoll(roll float64) error {
	if roll < RollMin || roll > RollMax {
		return NewAngleOutOfRangeError("roll", roll, RollMin, RollMax)
	}
	ea.roll = roll
	return nil
}

// Vector returns the angles as the vector [yaw, pitch, roll].
func (ea *EulerAngles) Vector() r3.Vector {
	return r3.Vector{X: ea.yaw, Y: ea.pitch, Z: ea.roll}
}

// RotationMatrix returns the composite rotation Rz * Ry * Rx, a proper
// orthogonal matrix for any valid set of angles.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return NewRotationMatrixZ(ea.yaw).Mul(NewRotationMatrixY(ea.pitch)).Mul(NewRotationMatrixX(ea.roll))
}

// Quaternion returns the equivalent unit quaternion. The ZYX composition is
// spelled out rather than delegated to a library default so the convention
// cannot drift.
func (ea *EulerAngles) Quaternion() quat.Number {
	cy, sy := math.Cos(ea.yaw/2), math.Sin(ea.yaw/2)
	cp, sp := math.Cos(ea.pitch/2), math.Sin(ea.pitch/2)
	cr, sr := math.Cos(ea.roll/2), math.Sin(ea.roll/2)
	return quat.Number{
		Real: cy*cp*cr + sy*sp*sr,
		Imag: cy*cp*sr - sy*sp*cr,
		Jmag: cy*sp*cr + sy*cp*sr,
		Kmag: sy*cp*cr - cy*sp*sr,
	}
}

// QuatToEulerAngles converts a unit quaternion to ZYX euler angles. Pitch is
// clamped at the +-pi/2 singularity.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	sinPitch := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	var pitch float64
	if math.Abs(sinPitch) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinPitch)
	} else {
		pitch = math.Asin(sinPitch)
	}
	return &EulerAngles{
		yaw:   math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(utils.Square(q.Jmag)+utils.Square(q.Kmag))),
		pitch: pitch,
		roll:  math.Atan2(2*(q.Real*q.Imag+q.Jmag*q.Kmag), 1-2*(utils.Square(q.Imag)+utils.Square(q.Jmag))),
	}
}
