package object

import "fmt"

// Get reads key from v. Reading from a non-object fails with a TypeError.
func Get(v any, key string) (any, error) {
	o, ok := v.(Object)
	if !ok {
		return nil, &TypeError{Op: "get", Message: fmt.Sprintf("cannot read %q of %T", key, v)}
	}
	return o.Get(key, o), nil
}

// Set writes key on v with v as the receiver.
func Set(v any, key string, value any) error {
	o, ok := v.(Object)
	if !ok {
		return &TypeError{Op: "set", Message: fmt.Sprintf("cannot write %q of %T", key, v)}
	}
	return o.Set(key, value, o)
}

// Has reports whether v is an object carrying key.
func Has(v any, key string) bool {
	o, ok := v.(Object)
	return ok && o.HasProperty(key)
}

// Call invokes fn with the given receiver.
func Call(fn any, this any, args ...any) (any, error) {
	c, ok := fn.(Callable)
	if !ok {
		return nil, &TypeError{Op: "call", Message: fmt.Sprintf("%T is not callable", fn)}
	}
	return c.Call(this, args...)
}

// Invoke reads the method key from v and calls it with v as the receiver,
// the way a method call expression does.
func Invoke(v any, key string, args ...any) (any, error) {
	o, ok := v.(Object)
	if !ok {
		return nil, &TypeError{Op: "invoke", Message: fmt.Sprintf("cannot call %q on %T", key, v)}
	}
	fn, ok := o.Get(key, o).(Callable)
	if !ok {
		return nil, &TypeError{Op: "invoke", Message: fmt.Sprintf("%q is not a function", key)}
	}
	return fn.Call(o, args...)
}

// New constructs an instance of ctor.
func New(ctor any, args ...any) (Object, error) {
	c, ok := ctor.(Constructor)
	if !ok {
		return nil, &TypeError{Op: "construct", Message: fmt.Sprintf("%T is not a constructor", ctor)}
	}
	return c.Construct(args, nil)
}

// InstanceOf reports whether ctor's "prototype" object appears on v's
// prototype chain.
func InstanceOf(v any, ctor Object) bool {
	o, ok := v.(Object)
	if !ok || ctor == nil {
		return false
	}
	proto, ok := ctor.Get("prototype", ctor).(Object)
	if !ok {
		return false
	}
	for p := o.GetPrototypeOf(); p != nil; p = p.GetPrototypeOf() {
		if p == proto {
			return true
		}
	}
	return false
}

// Keys returns the own enumerable keys of o in order.
func Keys(o Object) []string {
	var keys []string
	for _, k := range o.OwnKeys() {
		if d, ok := o.GetOwnProperty(k); ok && d.Enumerable {
			keys = append(keys, k)
		}
	}
	return keys
}

// OwnPropertyDescriptors returns every own descriptor of o keyed by name.
func OwnPropertyDescriptors(o Object) map[string]Descriptor {
	out := make(map[string]Descriptor)
	for _, k := range o.OwnKeys() {
		if d, ok := o.GetOwnProperty(k); ok {
			out[k] = d
		}
	}
	return out
}

// Assign copies the own enumerable properties of each source onto dst.
func Assign(dst Object, sources ...Object) error {
	for _, src := range sources {
		for _, k := range Keys(src) {
			if err := dst.Set(k, src.Get(k, src), dst); err != nil {
				return err
			}
		}
	}
	return nil
}

// Spread returns a new plain object holding the own enumerable properties of
// each source, later sources winning.
func Spread(sources ...Object) *Plain {
	out := NewPlain(nil)
	for _, src := range sources {
		for _, k := range Keys(src) {
			_ = out.DefineOwnProperty(k, Data(src.Get(k, src)))
		}
	}
	return out
}

// Freeze makes every own property of o read-only and non-configurable, and
// prevents extensions.
func Freeze(o Object) error {
	for _, k := range o.OwnKeys() {
		d, ok := o.GetOwnProperty(k)
		if !ok || (!d.Configurable && (d.IsAccessor() || !d.Writable)) {
			continue
		}
		if !d.IsAccessor() {
			d.Writable = false
		}
		d.Configurable = false
		if err := o.DefineOwnProperty(k, d); err != nil {
			return err
		}
	}
	return o.PreventExtensions()
}
