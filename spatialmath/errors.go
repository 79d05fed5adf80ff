package spatialmath

import "github.com/pkg/errors"

// OOBErrString is a string that all out-of-range angle errors contain, so that
// they can be checked for distinct from other errors.
const OOBErrString = "angle out of range"

// NewAngleOutOfRangeError returns an error for an euler angle outside its valid interval.
func NewAngleOutOfRangeError(name string, value, min, max float64) error {
	return errors.Errorf("%s %.5f %s [%.5f, %.5f]", name, value, OOBErrString, min, max)
}
