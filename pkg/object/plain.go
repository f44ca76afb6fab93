package object

import "slices"

// Plain is an ordinary object. Own properties keep insertion order, the way
// an ordered map keeps its key list next to the entries.
//
// The zero value is not usable; create objects with NewPlain.
type Plain struct {
	props      map[string]Descriptor
	keys       []string
	proto      Object
	extensible bool

	// self is the outer entity when Plain is embedded (Function, Class).
	self Object
}

// NewPlain creates an empty, extensible object with the given prototype.
func NewPlain(proto Object) *Plain {
	return &Plain{
		props:      make(map[string]Descriptor),
		proto:      proto,
		extensible: true,
	}
}

// With defines key as an enumerable data property and returns o, so literals
// can be written as a chain:
//
//	obj := object.NewPlain(nil).With("a", 1).With("b", 2)
//
// With panics if the property cannot be defined; it is meant for building
// fixtures, not for general mutation.
func (o *Plain) With(key string, value any) *Plain {
	if err := o.DefineOwnProperty(key, Data(value)); err != nil {
		panic(err)
	}
	return o
}

// Storage returns o. Types embedding *Plain inherit it.
func (o *Plain) Storage() *Plain {
	return o
}

func (o *Plain) this() Object {
	if o.self != nil {
		return o.self
	}
	return o
}

// GetPrototypeOf returns the prototype link.
func (o *Plain) GetPrototypeOf() Object {
	return o.proto
}

// SetPrototypeOf replaces the prototype link. The chain is checked for
// cycles up to the first entity that is not backed by ordinary storage.
func (o *Plain) SetPrototypeOf(proto Object) error {
	if proto == o.proto {
		return nil
	}
	if !o.extensible {
		return propertyError("setPrototypeOf", "", ErrNotExtensible)
	}
	for p := proto; p != nil; {
		s, ok := p.(Storage)
		if !ok {
			break
		}
		st := s.Storage()
		if st == o {
			return propertyError("setPrototypeOf", "", ErrCyclicPrototype)
		}
		p = st.proto
	}
	o.proto = proto
	return nil
}

// IsExtensible reports whether new properties may be added.
func (o *Plain) IsExtensible() bool {
	return o.extensible
}

// PreventExtensions forbids adding properties and changing the prototype.
func (o *Plain) PreventExtensions() error {
	o.extensible = false
	return nil
}

// GetOwnProperty returns the descriptor of an own property.
func (o *Plain) GetOwnProperty(key string) (Descriptor, bool) {
	d, ok := o.props[key]
	return d, ok
}

// DefineOwnProperty creates or redefines an own property.
//
// A non-configurable property may only have its value replaced, and only
// while it is a writable data property.
func (o *Plain) DefineOwnProperty(key string, desc Descriptor) error {
	cur, exists := o.props[key]
	if !exists {
		if !o.extensible {
			return propertyError("define", key, ErrNotExtensible)
		}
		o.props[key] = desc
		o.keys = append(o.keys, key)
		return nil
	}
	if !cur.Configurable {
		if cur.IsAccessor() || desc.IsAccessor() || !cur.Writable {
			return propertyError("define", key, ErrNotConfigurable)
		}
		cur.Value = desc.Value
		cur.Writable = desc.Writable
		o.props[key] = cur
		return nil
	}
	o.props[key] = desc
	return nil
}

// HasProperty reports whether key is an own or inherited property.
func (o *Plain) HasProperty(key string) bool {
	if _, ok := o.props[key]; ok {
		return true
	}
	if o.proto != nil {
		return o.proto.HasProperty(key)
	}
	return false
}

// Get reads key. Getters run with receiver.
func (o *Plain) Get(key string, receiver any) any {
	if receiver == nil {
		receiver = o.this()
	}
	if d, ok := o.props[key]; ok {
		if d.IsAccessor() {
			if d.Getter == nil {
				return nil
			}
			return d.Getter(receiver)
		}
		return d.Value
	}
	if o.proto != nil {
		return o.proto.Get(key, receiver)
	}
	return nil
}

// Set writes key.
//
// When the property is found (own or inherited) as an accessor its setter
// runs with receiver. When it is found as a data property it must be
// writable, and the value is then stored as an own property of receiver.
func (o *Plain) Set(key string, value any, receiver any) error {
	if receiver == nil {
		receiver = o.this()
	}
	d, ok := o.props[key]
	if !ok {
		if o.proto != nil {
			return o.proto.Set(key, value, receiver)
		}
		return o.storeOn(receiver, key, value)
	}
	if d.IsAccessor() {
		if d.Setter == nil {
			return propertyError("set", key, ErrReadOnly)
		}
		return d.Setter(receiver, value)
	}
	if !d.Writable {
		return propertyError("set", key, ErrReadOnly)
	}
	return o.storeOn(receiver, key, value)
}

func (o *Plain) storeOn(receiver any, key string, value any) error {
	target, ok := receiver.(Object)
	if !ok {
		return &TypeError{Op: "set", Message: "receiver is not an object"}
	}
	if target == o.this() || target == Object(o) {
		if d, exists := o.props[key]; exists {
			d.Value = value
			o.props[key] = d
			return nil
		}
		return o.DefineOwnProperty(key, Data(value))
	}
	if d, exists := target.GetOwnProperty(key); exists {
		if d.IsAccessor() || !d.Writable {
			return propertyError("set", key, ErrReadOnly)
		}
		d.Value = value
		return target.DefineOwnProperty(key, d)
	}
	return target.DefineOwnProperty(key, Data(value))
}

// Delete removes an own property.
func (o *Plain) Delete(key string) error {
	d, ok := o.props[key]
	if !ok {
		return nil
	}
	if !d.Configurable {
		return propertyError("delete", key, ErrNotConfigurable)
	}
	delete(o.props, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return nil
}

// OwnKeys returns own keys in insertion order.
func (o *Plain) OwnKeys() []string {
	return slices.Clone(o.keys)
}
