package mockify

import (
	"fmt"
	"slices"

	"mercator-hq/promock/pkg/object"
)

// ConfigKey is the reserved key under which a wrapped entity reports its
// configuration. HasProperty answers true for it on every wrapped entity;
// it is never enumerated, reads yield nil, and writes fail with an
// InvariantError.
const ConfigKey = "__promock_configuration__"

// DescriptorSource selects which entity answers enumeration and descriptor
// introspection on a wrapped entity.
type DescriptorSource string

const (
	// DescriptorSourceDefault always reports the original's keys and
	// descriptors.
	DescriptorSourceDefault DescriptorSource = "default"

	// DescriptorSourceOverride reports the current target's keys and
	// descriptors, falling back to the original for partial overrides.
	DescriptorSourceOverride DescriptorSource = "override"
)

// ParseDescriptorSource validates s.
func ParseDescriptorSource(s string) (DescriptorSource, error) {
	switch DescriptorSource(s) {
	case DescriptorSourceDefault, DescriptorSourceOverride:
		return DescriptorSource(s), nil
	}
	return "", fmt.Errorf("invalid descriptor source %q: must be %q or %q",
		s, DescriptorSourceDefault, DescriptorSourceOverride)
}

// configuration is the state owned by one wrapped entity. Only this package
// can reach it, through the unexported proxy method.
type configuration struct {
	id     string
	kind   string
	engine *Engine

	// defaultImplementation is the original entity. It never changes.
	defaultImplementation object.Object

	// statics supplies extra static members for WrapWithStatics.
	statics object.Object

	implementation   object.Object
	partial          bool
	descriptorSource DescriptorSource

	// instances is nil unless the original is a constructor and tracking is
	// enabled.
	instances *tracker

	// retargeted is the prototype live instances were moved to by the last
	// full override, or nil.
	retargeted object.Object
}

// target returns the current target.
func (c *configuration) target() object.Object {
	if c.implementation != nil {
		return c.implementation
	}
	return c.defaultImplementation
}

// partialActive reports whether lookups may fall back to the original.
func (c *configuration) partialActive() bool {
	return c.partial && c.implementation != nil
}

// readTarget returns the object that answers a lookup of key. A partial
// override that does not carry key defers to the original, and the statics
// object answers what neither has.
func (c *configuration) readTarget(key string) object.Object {
	t := c.target()
	if c.partialActive() && !t.HasProperty(key) {
		t = c.defaultImplementation
	}
	return c.orStatics(t, key)
}

// fallbackTarget is readTarget for a key a partial override carries as nil.
func (c *configuration) fallbackTarget(key string) object.Object {
	return c.orStatics(c.defaultImplementation, key)
}

func (c *configuration) orStatics(t object.Object, key string) object.Object {
	if c.statics != nil && !t.HasProperty(key) && c.statics.HasProperty(key) {
		return c.statics
	}
	return t
}

// describeTarget returns the object that answers a descriptor query for an
// own key, honoring the descriptor source.
func (c *configuration) describeTarget(key string) (object.Descriptor, bool) {
	if c.descriptorSource == DescriptorSourceDefault {
		if d, ok := c.defaultImplementation.GetOwnProperty(key); ok {
			return d, true
		}
	} else {
		if d, ok := c.target().GetOwnProperty(key); ok {
			return d, true
		}
		if c.partialActive() {
			if d, ok := c.defaultImplementation.GetOwnProperty(key); ok {
				return d, true
			}
		}
	}
	if c.statics != nil {
		return c.statics.GetOwnProperty(key)
	}
	return object.Descriptor{}, false
}

// ownKeys lists own keys honoring the descriptor source. Partial overrides
// report the union of implementation and original keys, implementation
// first.
func (c *configuration) ownKeys() []string {
	var keys []string
	if c.descriptorSource == DescriptorSourceDefault {
		keys = c.defaultImplementation.OwnKeys()
	} else {
		keys = c.target().OwnKeys()
		if c.partialActive() {
			keys = union(keys, c.defaultImplementation.OwnKeys())
		}
	}
	if c.statics != nil {
		keys = union(keys, c.statics.OwnKeys())
	}
	return slices.DeleteFunc(keys, func(k string) bool { return k == ConfigKey })
}

func union(a, b []string) []string {
	for _, k := range b {
		if !slices.Contains(a, k) {
			a = append(a, k)
		}
	}
	return a
}
