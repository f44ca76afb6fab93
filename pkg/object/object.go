package object

// Object is the structural protocol implemented by every interceptable entity.
//
// Receivers: Get and Set accept the receiver the operation was performed on.
// Accessor properties run their getter or setter with that receiver. A nil
// receiver means the object itself.
type Object interface {
	// GetPrototypeOf returns the prototype link, or nil at the end of a chain.
	GetPrototypeOf() Object

	// SetPrototypeOf replaces the prototype link.
	SetPrototypeOf(proto Object) error

	// IsExtensible reports whether new own properties may be added.
	IsExtensible() bool

	// PreventExtensions forbids adding new own properties.
	PreventExtensions() error

	// GetOwnProperty returns the descriptor of an own property.
	GetOwnProperty(key string) (Descriptor, bool)

	// DefineOwnProperty creates or redefines an own property.
	DefineOwnProperty(key string, desc Descriptor) error

	// HasProperty reports whether key is present on the object or its
	// prototype chain.
	HasProperty(key string) bool

	// Get reads key, walking the prototype chain.
	Get(key string, receiver any) any

	// Set writes key, honoring setters and read-only properties found on the
	// prototype chain.
	Set(key string, value any, receiver any) error

	// Delete removes an own property. Deleting a missing key is not an error.
	Delete(key string) error

	// OwnKeys returns own property keys in insertion order.
	OwnKeys() []string
}

// Func is the native body of a function or method.
type Func func(this any, args []any) (any, error)

// Callable is an Object that can be invoked.
type Callable interface {
	Object
	Call(this any, args ...any) (any, error)
}

// Constructor is a Callable that can create instances.
//
// newTarget is the constructor the caller originally applied new to. It
// decides which prototype the instance receives. A nil newTarget means the
// constructor itself.
type Constructor interface {
	Callable
	Construct(args []any, newTarget Constructor) (Object, error)
}

// Storage is implemented by objects backed by ordinary property storage.
// Every entity in this package implements it, and so does any type that
// embeds *Plain.
type Storage interface {
	Storage() *Plain
}

// Descriptor describes a single own property.
//
// A descriptor is either a data descriptor (Value, Writable) or an accessor
// descriptor (Getter, Setter).
type Descriptor struct {
	Value  any
	Getter func(this any) any
	Setter func(this any, value any) error

	Writable     bool
	Enumerable   bool
	Configurable bool
}

// IsAccessor reports whether d is an accessor descriptor.
func (d Descriptor) IsAccessor() bool {
	return d.Getter != nil || d.Setter != nil
}

// Data returns a writable, enumerable, configurable data descriptor.
func Data(value any) Descriptor {
	return Descriptor{Value: value, Writable: true, Enumerable: true, Configurable: true}
}

// Hidden returns a writable, configurable data descriptor that is excluded
// from enumeration.
func Hidden(value any) Descriptor {
	return Descriptor{Value: value, Writable: true, Configurable: true}
}

// Accessor returns a configurable, non-enumerable accessor descriptor.
func Accessor(get func(this any) any, set func(this any, value any) error) Descriptor {
	return Descriptor{Getter: get, Setter: set, Configurable: true}
}
