package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/robotstate/utils"
)

// Pose represents the position and ZYX euler orientation of the TCP in the
// world frame. Position is unconstrained; the orientation always holds
// validated angles. A Pose is treated as a value: copy it rather than sharing
// a pointer when handing it to another owner.
type Pose struct {
	x, y, z     float64
	orientation EulerAngles
}

// NewPose creates a pose from a position and ZYX euler angles in radians.
func NewPose(x, y, z, yaw, pitch, roll float64) (*Pose, error) {
	ea, err := NewEulerAngles(yaw, pitch, roll)
	if err != nil {
		return nil, err
	}
	return &Pose{x: x, y: y, z: z, orientation: *ea}, nil
}

// NewPoseFromDegrees creates a pose from a position and ZYX euler angles in
// degrees, with yaw and roll in [-180, 180] and pitch in [-90, 90].
func NewPoseFromDegrees(x, y, z, yaw, pitch, roll float64) (*Pose, error) {
	ea, err := NewEulerAnglesFromDegrees(yaw, pitch, roll)
	if err != nil {
		return nil, err
	}
	return &Pose{x: x, y: y, z: z, orientation: *ea}, nil
}

// NewPoseFromOrientation creates a pose from a position vector and an already
// validated orientation.
func NewPoseFromOrientation(point r3.Vector, ea *EulerAngles) *Pose {
	return &Pose{x: point.X, y: point.Y, z: point.Z, orientation: *ea}
}

// NewZeroPose returns a pose at the origin with no rotation.
func NewZeroPose() *Pose {
	return &Pose{}
}

// Point returns the position [x, y, z] of the TCP.
func (p *Pose) Point() r3.Vector {
	return r3.Vector{X: p.x, Y: p.y, Z: p.z}
}

// EulerAngles returns the orientation as the vector [yaw, pitch, roll].
func (p *Pose) EulerAngles() r3.Vector {
	return p.orientation.Vector()
}

// Orientation returns a copy of the validated euler orientation.
func (p *Pose) Orientation() *EulerAngles {
	ea := p.orientation
	return &ea
}

// SetPosition moves the TCP position. Positions are unconstrained so this
// cannot fail.
func (p *Pose) SetPosition(x, y, z float64) {
	p.x, p.y, p.z = x, y, z
}

// SetOrientation replaces the orientation with an already validated one.
func (p *Pose) SetOrientation(ea *EulerAngles) {
	p.orientation = *ea
}

// RotationMatrix returns the composite rotation Rz * Ry * Rx of the
// orientation.
func (p *Pose) RotationMatrix() *RotationMatrix {
	return p.orientation.RotationMatrix()
}

// Quaternion returns the unit quaternion equivalent to the orientation.
func (p *Pose) Quaternion() quat.Number {
	return p.orientation.Quaternion()
}

// EulerRateToAngularVelocityMatrix returns the matrix mapping euler angle
// rates to a world frame angular velocity at this orientation.
func (p *Pose) EulerRateToAngularVelocityMatrix() *mat.Dense {
	return p.orientation.EulerRateToAngularVelocityMatrix()
}

// PoseAlmostEqual reports whether two poses agree in position and orientation
// within epsilon.
func PoseAlmostEqual(a, b *Pose, epsilon float64) bool {
	return utils.Float64AlmostEqual(a.x, b.x, epsilon) &&
		utils.Float64AlmostEqual(a.y, b.y, epsilon) &&
		utils.Float64AlmostEqual(a.z, b.z, epsilon) &&
		utils.Float64AlmostEqual(a.orientation.yaw, b.orientation.yaw, epsilon) &&
		utils.Float64AlmostEqual(a.orientation.pitch, b.orientation.pitch, epsilon) &&
		utils.Float64AlmostEqual(a.orientation.roll, b.orientation.roll, epsilon)
}
