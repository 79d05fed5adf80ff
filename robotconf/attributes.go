package robotconf

import (
	"fmt"

	"github.com/pkg/errors"
)

// Attributes carries robot-type-specific extension fields that are not known
// to this package at design time, e.g. extra actuator states. Values are
// expected to be plain data: scalars, strings, bools, and slices or maps of
// the same.
type Attributes map[string]interface{}

// Has returns whether the given name is in the attributes.
func (a Attributes) Has(name string) bool {
	_, has := a[name]
	return has
}

// GetString returns a string for the given name. The value must be a string
// if it is present.
func (a Attributes) GetString(name string) string {
	x := a[name]
	if x == nil {
		return ""
	}

	s, ok := x.(string)
	if ok {
		return s
	}

	panic(fmt.Errorf("wanted a string for (%s) but got (%v) %T", name, x, x))
}

// GetInt returns an integer for the given name, or def if it is not present.
func (a Attributes) GetInt(name string, def int) int {
	x, has := a[name]
	if !has {
		return def
	}

	v, ok := x.(int)
	if ok {
		return v
	}

	v2, ok := x.(float64)
	if ok {
		return int(v2)
	}

	panic(fmt.Errorf("wanted an int for (%s) but got (%v) %T", name, x, x))
}

// GetFloat64 returns a float64 for the given name, or def if it is not
// present.
func (a Attributes) GetFloat64(name string, def float64) float64 {
	x, has := a[name]
	if !has {
		return def
	}

	v, ok := x.(float64)
	if ok {
		return v
	}

	v2, ok := x.(int)
	if ok {
		return float64(v2)
	}

	panic(fmt.Errorf("wanted a float64 for (%s) but got (%v) %T", name, x, x))
}

// GetBool returns a bool for the given name, or def if it is not present.
func (a Attributes) GetBool(name string, def bool) bool {
	x, has := a[name]
	if !has {
		return def
	}

	v, ok := x.(bool)
	if ok {
		return v
	}

	panic(fmt.Errorf("wanted a bool for (%s) but got (%v) %T", name, x, x))
}

// clone returns an independent deep copy of the attributes without the caller
// needing to know their names. It fails if any value is not plain data.
func (a Attributes) clone() (Attributes, error) {
	out := make(Attributes, len(a))
	for k, v := range a {
		cv, err := copyValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot copy attribute %q", k)
		}
		out[k] = cv
	}
	return out, nil
}

func copyValue(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case nil, bool, int, int32, int64, float32, float64, string:
		return x, nil
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			ce, err := copyValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = ce
		}
		return out, nil
	case []float64:
		out := make([]float64, len(x))
		copy(out, x)
		return out, nil
	case []int:
		out := make([]int, len(x))
		copy(out, x)
		return out, nil
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			ce, err := copyValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = ce
		}
		return out, nil
	default:
		return nil, errors.Errorf("value of type %T is not plain data", v)
	}
}
