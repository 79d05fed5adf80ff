package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// AngularVelocity contains an angular velocity in rad/s across x/y/z axes,
// expressed in the world frame.
type AngularVelocity r3.Vector

// EulerRateToAngularVelocityMatrix returns the 3x3 matrix T mapping ZYX euler
// angle rates [yawRate, pitchRate, rollRate] to a world frame angular
// velocity. Each column is the world frame axis the corresponding rate
// rotates about: z for yaw, y rotated through yaw for pitch, and x rotated
// through yaw then pitch for roll.
func (ea *EulerAngles) EulerRateToAngularVelocityMatrix() *mat.Dense {
	rz := NewRotationMatrixZ(ea.yaw)
	rzy := rz.Mul(NewRotationMatrixY(ea.pitch))
	c1 := r3.Vector{X: 0, Y: 0, Z: 1}
	c2 := rz.MulVec(r3.Vector{X: 0, Y: 1, Z: 0})
	c3 := rzy.MulVec(r3.Vector{X: 1, Y: 0, Z: 0})
	return mat.NewDense(3, 3, []float64{
		c1.X, c2.X, c3.X,
		c1.Y, c2.Y, c3.Y,
		c1.Z, c2.Z, c3.Z,
	})
}

// AngularVelocityFromRates maps euler angle rates [yawRate, pitchRate,
// rollRate] to the equivalent world frame angular velocity at this
// orientation.
func (ea *EulerAngles) AngularVelocityFromRates(rates r3.Vector) AngularVelocity {
	var w mat.VecDense
	w.MulVec(ea.EulerRateToAngularVelocityMatrix(), mat.NewVecDense(3, []float64{rates.X, rates.Y, rates.Z}))
	return AngularVelocity{X: w.AtVec(0), Y: w.AtVec(1), Z: w.AtVec(2)}
}
