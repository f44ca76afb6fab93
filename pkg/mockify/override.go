package mockify

import (
	"fmt"
	"slices"

	"mercator-hq/promock/pkg/object"
)

// Override modes, as reported in logs and metrics.
const (
	modeFull    = "full"
	modePartial = "partial"
)

// IsWrapped reports whether v was produced by Wrap.
func IsWrapped(v any) bool {
	_, ok := v.(wrapped)
	return ok
}

// Override makes replacement the implementation behind entity. Members
// missing on replacement are missing on entity until it is restored.
//
// When replacement's prototype link is entity itself, as with a class
// declared to extend the wrapped class, the link is pointed at the original
// instead. When replacement is a constructor, every live instance built
// through entity is moved onto replacement's prototype object.
//
// Override fails with a UsageError when entity is not wrapped, unless the
// Lenient option applies, and with an *object.TypeError when replacement is
// not an object. Nothing changes when it fails.
func Override(entity, replacement any, opts ...ControlOption) (*Handle, error) {
	return apply("override", entity, replacement, false, opts)
}

// PartialOverride makes partial the implementation behind entity. Reads of
// members partial does not have fall through to the original; writes go to
// partial. Existing instances keep their prototype.
func PartialOverride(entity, partial any, opts ...ControlOption) (*Handle, error) {
	return apply("partialOverride", entity, partial, true, opts)
}

// MustOverride is like Override but panics on error. It is meant for test
// setup.
func MustOverride(entity, replacement any, opts ...ControlOption) *Handle {
	h, err := Override(entity, replacement, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// MustPartialOverride is like PartialOverride but panics on error.
func MustPartialOverride(entity, partial any, opts ...ControlOption) *Handle {
	h, err := PartialOverride(entity, partial, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// Restore clears the implementation behind entity so it behaves as the
// original again. Instances moved by a full override return to the
// original's prototype object. Restoring an entity that is not overridden
// does nothing.
func Restore(entity any, opts ...ControlOption) error {
	cfg, err := controlled("restore", entity, opts)
	if cfg == nil {
		return err
	}
	return cfg.restore()
}

// SetPropertyDescriptorSource selects whether enumeration and descriptor
// introspection on entity report the original or the current target.
func SetPropertyDescriptorSource(entity any, mode DescriptorSource, opts ...ControlOption) error {
	cfg, err := controlled("setPropertyDescriptorSource", entity, opts)
	if cfg == nil {
		return err
	}
	if _, err := ParseDescriptorSource(string(mode)); err != nil {
		return &UsageError{Op: "setPropertyDescriptorSource", Reason: err.Error()}
	}
	cfg.descriptorSource = mode
	cfg.engine.logger.Debug("descriptor source changed",
		"entity_id", cfg.id,
		"descriptor_source", string(mode),
	)
	return nil
}

// GetActual returns the original entity behind a wrapped entity, bypassing
// interception. It fails with a UsageError when entity is not wrapped; under
// Lenient it returns entity unchanged instead.
func GetActual(entity any, opts ...ControlOption) (any, error) {
	cfg, err := controlled("getActual", entity, opts)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return entity, nil
	}
	return cfg.defaultImplementation, nil
}

// Current returns the implementation installed on entity, or nil when
// entity is not wrapped or not overridden.
func Current(entity any) object.Object {
	cfg := configOf(entity)
	if cfg == nil {
		return nil
	}
	return cfg.implementation
}

func configOf(entity any) *configuration {
	if w, ok := entity.(wrapped); ok {
		return w.proxy().cfg
	}
	return nil
}

// controlled returns the configuration of entity. For an unwrapped entity it
// returns a UsageError, or nil and no error under Lenient.
func controlled(op string, entity any, opts []ControlOption) (*configuration, error) {
	if cfg := configOf(entity); cfg != nil {
		return cfg, nil
	}

	e := Default()
	typ := fmt.Sprintf("%T", entity)
	if lenient(e, opts) {
		e.logger.Debug("ignoring control operation on unwrapped entity",
			"operation", op,
			"type", typ,
		)
		return nil, nil
	}

	e.metrics.RecordUsageError(op)
	e.logger.Warn("control operation on unwrapped entity",
		"operation", op,
		"type", typ,
	)
	return nil, notWrapped(op, entity)
}

func apply(op string, entity, replacement any, partial bool, opts []ControlOption) (*Handle, error) {
	cfg, err := controlled(op, entity, opts)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &Handle{}, nil
	}

	impl, ok := replacement.(object.Object)
	if !ok {
		return nil, &object.TypeError{Op: op, Message: fmt.Sprintf("replacement %T is not an object", replacement)}
	}
	if configOf(impl) == cfg {
		return nil, &UsageError{Op: op, Reason: "an entity cannot replace itself"}
	}

	if err := cfg.install(impl, partial); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return newHandle(cfg), nil
}

// install makes impl the implementation. The self-extension rewrite and the
// instance moves are undone if any step fails.
func (c *configuration) install(impl object.Object, partial bool) error {
	undo, err := c.detachSelfExtension(impl)
	if err != nil {
		return err
	}

	var proto object.Object
	if !partial {
		proto = prototypeOf(impl)
	}
	moved, err := c.retarget(proto)
	if err != nil {
		if undo != nil {
			undo()
		}
		return err
	}

	c.implementation = impl
	c.partial = partial

	mode := modeFull
	if partial {
		mode = modePartial
	}
	c.engine.metrics.RecordOverride(mode)
	c.engine.logger.Debug("override installed",
		"entity_id", c.id,
		"mode", mode,
		"self_extension", undo != nil,
		"instances_retargeted", moved,
	)
	return nil
}

// detachSelfExtension points the link in impl's prototype chain that reaches
// this entity at the original instead, so constructing impl cannot come back
// through the proxy. The walk stops at the first wrapped entity; a chain that
// reaches a different one is left alone. The returned func undoes the
// rewrite and is nil when nothing was rewritten.
func (c *configuration) detachSelfExtension(impl object.Object) (func(), error) {
	for child, parent := impl, impl.GetPrototypeOf(); parent != nil; child, parent = parent, parent.GetPrototypeOf() {
		w, ok := parent.(wrapped)
		if !ok {
			continue
		}
		if w.proxy().cfg != c {
			return nil, nil
		}
		if err := child.SetPrototypeOf(c.defaultImplementation); err != nil {
			return nil, err
		}
		return func() { _ = child.SetPrototypeOf(parent) }, nil
	}
	return nil, nil
}

func (c *configuration) restore() error {
	moved, err := c.retarget(nil)
	if err != nil {
		return fmt.Errorf("failed to restore: %w", err)
	}
	if c.implementation == nil {
		return nil
	}

	c.implementation = nil
	c.partial = false

	c.engine.metrics.RecordRestore()
	c.engine.logger.Debug("override restored",
		"entity_id", c.id,
		"instances_retargeted", moved,
	)
	return nil
}

// retarget moves every live tracked instance onto proto. A nil proto moves
// the instances a previous call placed on its prototype back to the
// original's prototype object.
func (c *configuration) retarget(proto object.Object) (int, error) {
	if c.instances == nil {
		return 0, nil
	}

	from := c.retargeted
	to := proto
	if proto == nil {
		if from == nil {
			return 0, nil
		}
		to = prototypeOf(c.defaultImplementation)
		if to == nil {
			c.retargeted = nil
			return 0, nil
		}
	}

	type step struct {
		inst *object.Plain
		prev object.Object
	}
	var done []step
	for _, inst := range c.instances.live() {
		prev := inst.GetPrototypeOf()
		if prev == to || (proto == nil && prev != from) {
			continue
		}
		if err := inst.SetPrototypeOf(to); err != nil {
			for _, s := range slices.Backward(done) {
				_ = s.inst.SetPrototypeOf(s.prev)
			}
			return 0, fmt.Errorf("failed to retarget instance: %w", err)
		}
		done = append(done, step{inst: inst, prev: prev})
	}

	c.retargeted = proto
	c.engine.metrics.InstancesRetargeted(len(done))
	return len(done), nil
}

// prototypeOf returns the "prototype" object of a constructor, or nil.
func prototypeOf(o object.Object) object.Object {
	if _, ok := o.(object.Constructor); !ok {
		return nil
	}
	proto, _ := o.Get("prototype", o).(object.Object)
	return proto
}
