// Package robotconf describes one candidate kinematic state of a robot: its
// joint positions, the TCP pose they produce, and validity flags written back
// by external reachability and collision checkers.
package robotconf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Input wraps a single actuated joint position.
//   - revolute joints should be in radians.
//   - prismatic joints should be in mm.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(floatList []float64) []Input {
	inputs := make([]Input, len(floatList))
	for i, f := range floatList {
		inputs[i] = Input{f}
	}
	return inputs
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	floatList := make([]float64, len(inputs))
	for i, f := range inputs {
		floatList[i] = f.Value
	}
	return floatList
}

// InputsL2Distance returns the two-norm between two Input sets, or +Inf when
// their lengths differ.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	diff := make([]float64, 0, len(from))
	for i, f := range from {
		diff = append(diff, f.Value-to[i].Value)
	}
	// 2 is the L value returning a standard L2 Normalization
	return floats.Norm(diff, 2)
}
