package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPoseVectors(t *testing.T) {
	pose, err := NewPose(1, 2, 3, 0.4, 0.5, 0.6)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, pose.Point(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	// the euler accessor returns the angles, not the position
	test.That(t, pose.EulerAngles(), test.ShouldResemble, r3.Vector{X: 0.4, Y: 0.5, Z: 0.6})
	test.That(t, pose.EulerAngles(), test.ShouldNotResemble, pose.Point())

	test.That(t, pose.Orientation().Yaw(), test.ShouldEqual, 0.4)
	test.That(t, pose.Orientation().Pitch(), test.ShouldEqual, 0.5)
	test.That(t, pose.Orientation().Roll(), test.ShouldEqual, 0.6)

	// a pose assembled from a point and a validated orientation is the same
	fromParts := NewPoseFromOrientation(pose.Point(), pose.Orientation())
	test.That(t, fromParts, test.ShouldResemble, pose)
}

func TestPoseValidation(t *testing.T) {
	_, err := NewPose(0, 0, 0, math.Pi+1e-9, 0, 0)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, OOBErrString)

	_, err = NewPoseFromDegrees(0, 0, 0, 0, -91, 0)
	test.That(t, err, test.ShouldNotBeNil)

	// boundary values are valid; positions are unconstrained
	pose, err := NewPose(1e9, -1e9, 0, math.Pi, math.Pi/2, -math.Pi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose, test.ShouldNotBeNil)

	zero := NewZeroPose()
	test.That(t, zero.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, zero.EulerAngles(), test.ShouldResemble, r3.Vector{})
}

func TestPoseDerivedDelegation(t *testing.T) {
	pose, err := NewPoseFromDegrees(0, 0, 0, 30, 20, 10)
	test.That(t, err, test.ShouldBeNil)
	ea := pose.Orientation()

	test.That(t, pose.RotationMatrix(), test.ShouldResemble, ea.RotationMatrix())
	test.That(t, pose.Quaternion(), test.ShouldResemble, ea.Quaternion())
	test.That(t, pose.EulerRateToAngularVelocityMatrix(), test.ShouldResemble, ea.EulerRateToAngularVelocityMatrix())
}

func TestPoseValueSemantics(t *testing.T) {
	pose, err := NewPose(1, 2, 3, 0.1, 0.2, 0.3)
	test.That(t, err, test.ShouldBeNil)

	// a plain assignment is a full copy
	snapshot := *pose
	pose.SetPosition(9, 9, 9)
	test.That(t, snapshot.Point(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	// the returned orientation is a copy; mutating it does not reach the pose
	ea := pose.Orientation()
	test.That(t, ea.SetYaw(3), test.ShouldBeNil)
	test.That(t, pose.Orientation().Yaw(), test.ShouldEqual, 0.1)

	// SetOrientation copies the validated value back in
	pose.SetOrientation(ea)
	test.That(t, pose.Orientation().Yaw(), test.ShouldEqual, 3.)
}

func TestPoseAlmostEqual(t *testing.T) {
	a, err := NewPose(1, 2, 3, 0.1, 0.2, 0.3)
	test.That(t, err, test.ShouldBeNil)
	b, err := NewPose(1+1e-9, 2, 3, 0.1, 0.2-1e-9, 0.3)
	test.That(t, err, test.ShouldBeNil)
	c, err := NewPose(1.1, 2, 3, 0.1, 0.2, 0.3)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, PoseAlmostEqual(a, b, 1e-6), test.ShouldBeTrue)
	test.That(t, PoseAlmostEqual(a, c, 1e-6), test.ShouldBeFalse)
}
