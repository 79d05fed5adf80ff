package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 rotation matrix in row major order.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a slice of 9 floats in row
// major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("expected 9 values, got %d", len(m))
	}
	rm := &RotationMatrix{}
	copy(rm.mat[:], m)
	return rm, nil
}

// NewRotationMatrixX returns the right-handed rotation about the X axis by
// theta radians.
func NewRotationMatrixX(theta float64) *RotationMatrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return &RotationMatrix{[9]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// NewRotationMatrixY returns the right-handed rotation about the Y axis by
// theta radians.
func NewRotationMatrixY(theta float64) *RotationMatrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return &RotationMatrix{[9]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// NewRotationMatrixZ returns the right-handed rotation about the Z axis by
// theta radians.
func NewRotationMatrixZ(theta float64) *RotationMatrix {
	c, s := math.Cos(theta), math.Sin(theta)
	return &RotationMatrix{[9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// At returns the value of the matrix at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector of the row-th row.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a vector of the col-th column.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Mul returns the matrix product rm * other.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	out := &RotationMatrix{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += rm.mat[3*row+k] * other.mat[3*k+col]
			}
			out.mat[3*row+col] = sum
		}
	}
	return out
}

// MulVec returns the product rm * v.
func (rm *RotationMatrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[1]*v.Y + rm.mat[2]*v.Z,
		Y: rm.mat[3]*v.X + rm.mat[4]*v.Y + rm.mat[5]*v.Z,
		Z: rm.mat[6]*v.X + rm.mat[7]*v.Y + rm.mat[8]*v.Z,
	}
}

// Transpose returns the transpose, which for a rotation matrix is also the
// inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Determinant returns the determinant, which is 1 for any proper rotation.
func (rm *RotationMatrix) Determinant() float64 {
	m := rm.mat
	return m[0]*(m[4]*m[8]-m[5]*m[7]) - m[1]*(m[3]*m[8]-m[5]*m[6]) + m[2]*(m[3]*m[7]-m[4]*m[6])
}

// OrthonormalityError returns the largest absolute deviation of transpose(rm) * rm
// from the identity, a cheap measure of how far the matrix is from a true
// rotation.
func (rm *RotationMatrix) OrthonormalityError() float64 {
	prod := rm.Transpose().Mul(rm)
	var worst float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 0.
			if row == col {
				want = 1.
			}
			if diff := math.Abs(prod.At(row, col) - want); diff > worst {
				worst = diff
			}
		}
	}
	return worst
}

// Mat returns the matrix as a gonum Dense matrix.
func (rm *RotationMatrix) Mat() *mat.Dense {
	return mat.NewDense(3, 3, append([]float64{}, rm.mat[:]...))
}

// Quaternion returns the unit quaternion equivalent to this rotation, using
// Shepperd's method to stay numerically stable near all axes.
func (rm *RotationMatrix) Quaternion() quat.Number {
	m := rm.mat
	tr := m[0] + m[4] + m[8]
	switch {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		return quat.Number{
			Real: s / 4,
			Imag: (m[7] - m[5]) / s,
			Jmag: (m[2] - m[6]) / s,
			Kmag: (m[3] - m[1]) / s,
		}
	case m[0] > m[4] && m[0] > m[8]:
		s := 2 * math.Sqrt(1+m[0]-m[4]-m[8])
		return quat.Number{
			Real: (m[7] - m[5]) / s,
			Imag: s / 4,
			Jmag: (m[1] + m[3]) / s,
			Kmag: (m[2] + m[6]) / s,
		}
	case m[4] > m[8]:
		s := 2 * math.Sqrt(1+m[4]-m[0]-m[8])
		return quat.Number{
			Real: (m[2] - m[6]) / s,
			Imag: (m[1] + m[3]) / s,
			Jmag: s / 4,
			Kmag: (m[5] + m[7]) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m[8]-m[0]-m[4])
		return quat.Number{
			Real: (m[3] - m[1]) / s,
			Imag: (m[2] + m[6]) / s,
			Jmag: (m[5] + m[7]) / s,
			Kmag: s / 4,
		}
	}
}

// QuatToRotationMatrix converts a unit quaternion to a rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return &RotationMatrix{[9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}}
}
