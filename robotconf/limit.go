package robotconf

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/robotstate/utils"
)

// OOBErrString is a string that all joint out-of-bounds errors contain, so
// that they can be checked for distinct from other errors.
const OOBErrString = "input out of bounds"

// Limit represents the limits of motion for one joint.
type Limit struct {
	Min float64
	Max float64
}

// LimitsAlmostEqual reports whether two limit sets agree within floating
// point imprecision.
func LimitsAlmostEqual(a, b []Limit) bool {
	if len(a) != len(b) {
		return false
	}

	const epsilon = 1e-5
	for idx, x := range a {
		if !utils.Float64AlmostEqual(x.Min, b[idx].Min, epsilon) ||
			!utils.Float64AlmostEqual(x.Max, b[idx].Max, epsilon) {
			return false
		}
	}

	return true
}

// CheckReachability verifies that every joint of the configuration lies
// within its mechanical limit and writes the result back onto the
// configuration's reachability flag. It returns an error naming every
// offending joint when the configuration is unreachable. Collision-freedom is
// never touched here; that flag belongs to a separate collision checker.
func CheckReachability(conf *Configuration, limits []Limit) error {
	q := conf.Joints()
	if len(limits) != len(q) {
		conf.SetReachable(false)
		return errors.Errorf("configuration has %d joints but %d limits were given", len(q), len(limits))
	}
	var err error
	for i, inp := range q {
		if inp.Value < limits[i].Min || inp.Value > limits[i].Max {
			err = multierr.Append(err,
				errors.Errorf("joint %d: %.5f %s [%.5f, %.5f]", i, inp.Value, OOBErrString, limits[i].Min, limits[i].Max))
		}
	}
	conf.SetReachable(err == nil)
	return err
}
