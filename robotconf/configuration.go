package robotconf

import (
	"github.com/pkg/errors"

	"go.viam.com/robotstate/spatialmath"
)

// Configuration aggregates one candidate kinematic state of a robot: an
// ordered joint position vector and the TCP pose it produces. Whether the
// state is reachable and collision free is decided by external checkers that
// write the flags back here; Valid reports their conjunction.
//
// A Configuration has shared mutable identity and is not synchronized. Keep a
// single owner, and use Clone to hand an independent snapshot to another
// goroutine.
type Configuration struct {
	q             []Input
	pose          spatialmath.Pose
	reachable     bool
	collisionFree bool
	attrs         Attributes
}

// NewConfiguration creates a configuration from initial joint positions and a
// pose. The joint slice and the pose are copied in; the configuration owns
// both exclusively. Both validity flags start false. A nil pose means the
// zero pose.
func NewConfiguration(q []Input, pose *spatialmath.Pose) *Configuration {
	conf := &Configuration{
		q:     make([]Input, len(q)),
		attrs: Attributes{},
	}
	copy(conf.q, q)
	if pose != nil {
		conf.pose = *pose
	} else {
		conf.pose = *spatialmath.NewZeroPose()
	}
	return conf
}

// Joints returns the live joint slice. Mutations through it are visible to
// every holder of this Configuration.
func (conf *Configuration) Joints() []Input {
	return conf.q
}

// SetJoint sets the position of the i-th joint.
func (conf *Configuration) SetJoint(i int, value float64) error {
	if i < 0 || i >= len(conf.q) {
		return errors.Errorf("joint index %d out of range for %d joints", i, len(conf.q))
	}
	conf.q[i] = Input{value}
	return nil
}

// Pose returns a copy of the owned TCP pose.
func (conf *Configuration) Pose() *spatialmath.Pose {
	pose := conf.pose
	return &pose
}

// SetPose replaces the owned TCP pose with a copy of the given one.
func (conf *Configuration) SetPose(pose *spatialmath.Pose) {
	conf.pose = *pose
}

// Reachable returns whether an external checker has marked the joint
// positions as within the robot's mechanical limits.
func (conf *Configuration) Reachable() bool {
	return conf.reachable
}

// SetReachable records the result of an external reachability check.
func (conf *Configuration) SetReachable(reachable bool) {
	conf.reachable = reachable
}

// CollisionFree returns whether an external checker has marked the
// configuration as collision free.
func (conf *Configuration) CollisionFree() bool {
	return conf.collisionFree
}

// SetCollisionFree records the result of an external collision check.
func (conf *Configuration) SetCollisionFree(collisionFree bool) {
	conf.collisionFree = collisionFree
}

// Valid reports whether the configuration is both reachable and collision
// free. It is recomputed on every call so it always reflects the latest
// flags.
func (conf *Configuration) Valid() bool {
	return conf.reachable && conf.collisionFree
}

// SetAttribute attaches a named extension field to the configuration.
func (conf *Configuration) SetAttribute(name string, value interface{}) {
	if conf.attrs == nil {
		conf.attrs = Attributes{}
	}
	conf.attrs[name] = value
}

// Attribute returns the extension field with the given name, or nil if it is
// not attached.
func (conf *Configuration) Attribute(name string) interface{} {
	return conf.attrs[name]
}

// Attributes returns the live extension field map.
func (conf *Configuration) Attributes() Attributes {
	return conf.attrs
}

// Clone returns an independent deep copy: same joint values in a fresh slice,
// a fresh pose, the same flags, and a by-value copy of every attached
// extension field. It fails only when an extension field holds a value that
// is not plain data.
func (conf *Configuration) Clone() (*Configuration, error) {
	attrs, err := conf.attrs.clone()
	if err != nil {
		return nil, err
	}
	clone := &Configuration{
		q:             make([]Input, len(conf.q)),
		pose:          conf.pose,
		reachable:     conf.reachable,
		collisionFree: conf.collisionFree,
		attrs:         attrs,
	}
	copy(clone.q, conf.q)
	return clone, nil
}
