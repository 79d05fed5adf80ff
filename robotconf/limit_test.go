package robotconf

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestCheckReachability(t *testing.T) {
	limits := []Limit{{-math.Pi, math.Pi}, {-math.Pi / 2, math.Pi / 2}, {0, 100}}

	conf := NewConfiguration(FloatsToInputs([]float64{0.5, -0.2, 30}), nil)
	conf.SetCollisionFree(true)
	test.That(t, CheckReachability(conf, limits), test.ShouldBeNil)
	test.That(t, conf.Reachable(), test.ShouldBeTrue)
	// collision-freedom belongs to a different checker and is untouched
	test.That(t, conf.CollisionFree(), test.ShouldBeTrue)

	bad := NewConfiguration(FloatsToInputs([]float64{0.5, 2.0, 150}), nil)
	err := CheckReachability(bad, limits)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, OOBErrString)
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint 1")
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint 2")
	test.That(t, bad.Reachable(), test.ShouldBeFalse)
	test.That(t, bad.CollisionFree(), test.ShouldBeFalse)

	// a previously reachable configuration loses the flag when rechecked after
	// a joint moved out of bounds
	test.That(t, conf.SetJoint(2, 200), test.ShouldBeNil)
	test.That(t, CheckReachability(conf, limits), test.ShouldNotBeNil)
	test.That(t, conf.Reachable(), test.ShouldBeFalse)

	// limit count must match the joint count
	err = CheckReachability(conf, limits[:2])
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "3 joints but 2 limits")
}

func TestLimitsAlmostEqual(t *testing.T) {
	a := []Limit{{-1, 1}, {0, 2}}
	b := []Limit{{-1 + 1e-7, 1}, {0, 2 - 1e-7}}
	c := []Limit{{-1, 1}, {0, 3}}

	test.That(t, LimitsAlmostEqual(a, b), test.ShouldBeTrue)
	test.That(t, LimitsAlmostEqual(a, c), test.ShouldBeFalse)
	test.That(t, LimitsAlmostEqual(a, a[:1]), test.ShouldBeFalse)
}

func TestInputHelpers(t *testing.T) {
	values := []float64{1, -2, 3.5}
	inputs := FloatsToInputs(values)
	test.That(t, InputsToFloats(inputs), test.ShouldResemble, values)

	test.That(t, InputsL2Distance(inputs, inputs), test.ShouldEqual, 0.)
	test.That(t, InputsL2Distance(FloatsToInputs([]float64{0, 0}), FloatsToInputs([]float64{3, 4})), test.ShouldAlmostEqual, 5)
	test.That(t, math.IsInf(InputsL2Distance(inputs, inputs[:2]), 1), test.ShouldBeTrue)
}
