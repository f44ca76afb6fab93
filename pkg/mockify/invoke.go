package mockify

import (
	"fmt"
	"reflect"

	"mercator-hq/promock/pkg/object"
)

// boundFunction is a function read through a proxy. A call whose receiver
// is the value the function was read through runs against target instead;
// any other receiver is kept.
type boundFunction struct {
	object.Callable
	receiver any
	target   object.Object
}

func (b *boundFunction) Call(this any, args ...any) (any, error) {
	if sameValue(this, b.receiver) {
		this = b.target
	}
	return b.Callable.Call(this, args...)
}

// sameValue compares a and b by identity without panicking on
// incomparable dynamic types.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Call invokes the current target. A partial override that is not itself
// callable leaves calls on the original.
func (f *FunctionProxy) Call(this any, args ...any) (any, error) {
	fn, err := f.callTarget()
	if err != nil {
		return nil, err
	}
	return fn.Call(this, args...)
}

func (f *FunctionProxy) callTarget() (object.Callable, error) {
	cfg := f.cfg
	if fn, ok := cfg.target().(object.Callable); ok {
		return fn, nil
	}
	if cfg.partialActive() {
		if fn, ok := cfg.defaultImplementation.(object.Callable); ok {
			return fn, nil
		}
	}
	return nil, &object.TypeError{Op: "call", Message: fmt.Sprintf("current target %T is not callable", cfg.target())}
}

// Construct builds an instance of the current target.
//
// When newTarget is nil or the proxy itself the instance is recorded by the
// instance tracker and returned wrapped. Any other newTarget is a subclass
// constructing through the proxy as its parent: the call is forwarded with
// newTarget preserved and the raw instance is returned untracked.
func (c *ClassProxy) Construct(args []any, newTarget object.Constructor) (object.Object, error) {
	cfg := c.cfg
	ctor, ok := cfg.target().(object.Constructor)
	if !ok && cfg.partialActive() {
		ctor, ok = cfg.defaultImplementation.(object.Constructor)
	}
	if !ok {
		return nil, &object.TypeError{Op: "construct", Message: fmt.Sprintf("current target %T is not a constructor", cfg.target())}
	}

	if newTarget != nil && !sameValue(newTarget, c.self) {
		return ctor.Construct(args, newTarget)
	}

	inst, err := ctor.Construct(args, nil)
	if err != nil {
		return nil, err
	}
	if cfg.instances != nil && !cfg.instances.add(inst) {
		cfg.engine.logger.Debug("instance not tracked: no ordinary storage",
			"entity_id", cfg.id,
			"type", fmt.Sprintf("%T", inst),
		)
	}
	return cfg.engine.wrapObject(inst), nil
}
