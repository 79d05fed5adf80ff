// Package main contains a command to print the derived quantities of a pose.
package main

import (
	"flag"

	"github.com/edaniels/golog"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/robotstate/spatialmath"
)

var logger = golog.NewDevelopmentLogger("poseinfo")

func main() {
	x := flag.Float64("x", 0, "tcp x position")
	y := flag.Float64("y", 0, "tcp y position")
	z := flag.Float64("z", 0, "tcp z position")
	yaw := flag.Float64("yaw", 0, "yaw in degrees [-180, 180]")
	pitch := flag.Float64("pitch", 0, "pitch in degrees [-90, 90]")
	roll := flag.Float64("roll", 0, "roll in degrees [-180, 180]")

	flag.Parse()

	pose, err := spatialmath.NewPoseFromDegrees(*x, *y, *z, *yaw, *pitch, *roll)
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infow("pose", "position", pose.Point(), "euler angles (rad)", pose.EulerAngles())

	rm := pose.RotationMatrix()
	for row := 0; row < 3; row++ {
		logger.Infof("R[%d] = %+v", row, rm.Row(row))
	}
	logger.Infof("det(R) = %f", rm.Determinant())
	logger.Infof("quaternion = %+v", pose.Quaternion())
	logger.Infof("euler rate to angular velocity matrix:\n%v",
		mat.Formatted(pose.EulerRateToAngularVelocityMatrix(), mat.Prefix(""), mat.Squeeze()))
}
