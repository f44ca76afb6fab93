package mockify

import (
	"mercator-hq/promock/pkg/object"
)

// wrapped is implemented only by the proxies of this package. The method is
// unexported, so no other type can claim to be wrapped.
type wrapped interface {
	proxy() *Proxy
}

// Proxy stands in for a wrapped object. Every protocol operation resolves
// the current target anew; nothing is cached between calls.
type Proxy struct {
	cfg *configuration

	// self is the outermost wrapper (Proxy, FunctionProxy or ClassProxy).
	self object.Object
}

// FunctionProxy stands in for a wrapped callable.
type FunctionProxy struct {
	*Proxy
}

// ClassProxy stands in for a wrapped constructor.
type ClassProxy struct {
	*FunctionProxy
}

var (
	_ object.Object      = (*Proxy)(nil)
	_ object.Callable    = (*FunctionProxy)(nil)
	_ object.Constructor = (*ClassProxy)(nil)
)

func (p *Proxy) proxy() *Proxy {
	return p
}

// ID returns the identifier used to correlate log records for this entity.
func (p *Proxy) ID() string {
	return p.cfg.id
}

// GetPrototypeOf returns the current target's prototype link.
func (p *Proxy) GetPrototypeOf() object.Object {
	return p.cfg.target().GetPrototypeOf()
}

// SetPrototypeOf changes the current target's prototype link.
func (p *Proxy) SetPrototypeOf(proto object.Object) error {
	return p.cfg.target().SetPrototypeOf(proto)
}

// IsExtensible reports whether the current target is extensible.
func (p *Proxy) IsExtensible() bool {
	return p.cfg.target().IsExtensible()
}

// PreventExtensions makes the current target non-extensible.
func (p *Proxy) PreventExtensions() error {
	return p.cfg.target().PreventExtensions()
}

// GetOwnProperty describes key according to the descriptor source.
func (p *Proxy) GetOwnProperty(key string) (object.Descriptor, bool) {
	if key == ConfigKey {
		return object.Descriptor{}, false
	}
	return p.cfg.describeTarget(key)
}

// DefineOwnProperty defines key on the current target.
func (p *Proxy) DefineOwnProperty(key string, desc object.Descriptor) error {
	if key == ConfigKey {
		return &InvariantError{Op: "define", Key: key}
	}
	return p.cfg.target().DefineOwnProperty(key, desc)
}

// HasProperty reports whether key is visible through the proxy. The
// configuration key is always present.
func (p *Proxy) HasProperty(key string) bool {
	if key == ConfigKey {
		return true
	}
	return p.cfg.readTarget(key).HasProperty(key)
}

// Get reads key from the object resolved for it. Getters run with that
// object as receiver. Non-constructor functions come back bound, so that
// calling them through the proxy runs them against the resolved object.
// A partial implementation whose value for key is nil defers the read to
// the original.
func (p *Proxy) Get(key string, receiver any) any {
	if key == ConfigKey {
		return nil
	}
	if receiver == nil {
		receiver = p.self
	}

	t := p.cfg.readTarget(key)
	v := t.Get(key, t)
	if v == nil && p.cfg.partialActive() && sameValue(t, p.cfg.implementation) {
		// nil in a partial implementation reads as absent
		t = p.cfg.fallbackTarget(key)
		v = t.Get(key, t)
	}
	if fn, ok := v.(object.Callable); ok && bindable(fn) {
		return &boundFunction{Callable: fn, receiver: receiver, target: t}
	}
	return v
}

// Set writes key on the current target. Writes never fall back to the
// original while a partial override is active.
func (p *Proxy) Set(key string, value any, receiver any) error {
	if key == ConfigKey {
		return &InvariantError{Op: "set", Key: key}
	}
	t := p.cfg.target()
	if receiver == nil || sameValue(receiver, p.self) {
		receiver = t
	}
	return t.Set(key, value, receiver)
}

// Delete removes key from the current target.
func (p *Proxy) Delete(key string) error {
	if key == ConfigKey {
		return &InvariantError{Op: "delete", Key: key}
	}
	return p.cfg.target().Delete(key)
}

// OwnKeys lists own keys according to the descriptor source.
func (p *Proxy) OwnKeys() []string {
	return p.cfg.ownKeys()
}

func bindable(fn object.Callable) bool {
	if _, ok := fn.(wrapped); ok {
		return false
	}
	if _, ok := fn.(object.Constructor); ok {
		return false
	}
	return true
}
