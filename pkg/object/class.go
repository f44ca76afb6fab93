package object

import "fmt"

type field struct {
	name  string
	value func() any
}

// Class is a constructible entity.
//
// The class's own prototype link is its parent class, and its "prototype"
// property holds the object that instances inherit from. The parent is read
// from the prototype link at every construction.
type Class struct {
	*Plain
	name      string
	prototype *Plain
	fields    []field
	init      func(this Object, args []any) error
}

// NewClass creates a class. parent may be nil for a base class; otherwise
// the class's prototype object inherits from parent's "prototype" property.
func NewClass(name string, parent Constructor) *Class {
	var statics Object
	var parentProto Object
	if parent != nil {
		statics = parent
		parentProto, _ = parent.Get("prototype", parent).(Object)
	}

	c := &Class{
		Plain:     NewPlain(statics),
		name:      name,
		prototype: NewPlain(parentProto),
	}
	c.self = c
	c.props["name"] = Descriptor{Value: name, Configurable: true}
	c.props["prototype"] = Descriptor{Value: c.prototype}
	c.keys = append(c.keys, "name", "prototype")
	c.prototype.props["constructor"] = Hidden(c)
	c.prototype.keys = append(c.prototype.keys, "constructor")
	return c
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Prototype returns the object instances inherit from.
func (c *Class) Prototype() *Plain {
	return c.prototype
}

// Method defines a non-enumerable method on the prototype and returns c.
func (c *Class) Method(name string, fn Func) *Class {
	c.prototype.props[name] = Hidden(NewFunction(name, fn))
	c.addProtoKey(name)
	return c
}

// Getter defines an accessor without setter on the prototype and returns c.
func (c *Class) Getter(name string, get func(this any) any) *Class {
	c.prototype.props[name] = Accessor(get, nil)
	c.addProtoKey(name)
	return c
}

// Accessor defines an accessor with getter and setter on the prototype and
// returns c.
func (c *Class) Accessor(name string, get func(this any) any, set func(this any, value any) error) *Class {
	c.prototype.props[name] = Accessor(get, set)
	c.addProtoKey(name)
	return c
}

// Field declares an instance field initialised to value and returns c.
func (c *Class) Field(name string, value any) *Class {
	c.fields = append(c.fields, field{name: name, value: func() any { return value }})
	return c
}

// FieldFunc declares an instance field whose initial value is produced per
// instance and returns c.
func (c *Class) FieldFunc(name string, value func() any) *Class {
	c.fields = append(c.fields, field{name: name, value: value})
	return c
}

// Static defines an enumerable static member and returns c.
func (c *Class) Static(name string, value any) *Class {
	c.With(name, value)
	return c
}

// StaticMethod defines a non-enumerable static method and returns c.
func (c *Class) StaticMethod(name string, fn Func) *Class {
	if err := c.DefineOwnProperty(name, Hidden(NewFunction(name, fn))); err != nil {
		panic(err)
	}
	return c
}

// Init sets the constructor body. It runs after the parent's construction
// and after this class's fields are defined.
func (c *Class) Init(fn func(this Object, args []any) error) *Class {
	c.init = fn
	return c
}

func (c *Class) addProtoKey(name string) {
	for _, k := range c.prototype.keys {
		if k == name {
			return
		}
	}
	c.prototype.keys = append(c.prototype.keys, name)
}

// Call fails: classes can only be constructed.
func (c *Class) Call(this any, args ...any) (any, error) {
	return nil, &TypeError{Op: "call", Message: fmt.Sprintf("class %s cannot be invoked without new", c.name)}
}

// Construct creates an instance.
//
// The parent is resolved from the class's prototype link. A base class
// allocates the instance with newTarget's "prototype" property as its
// prototype; derived classes delegate allocation to the parent with the
// same newTarget.
func (c *Class) Construct(args []any, newTarget Constructor) (Object, error) {
	if newTarget == nil {
		newTarget = c
	}

	var inst Object
	if parent := c.GetPrototypeOf(); parent != nil {
		super, ok := parent.(Constructor)
		if !ok {
			return nil, &TypeError{Op: "construct", Message: fmt.Sprintf("super of class %s is not a constructor", c.name)}
		}
		var err error
		inst, err = super.Construct(args, newTarget)
		if err != nil {
			return nil, err
		}
	} else {
		proto, _ := newTarget.Get("prototype", newTarget).(Object)
		inst = NewPlain(proto)
	}

	for _, f := range c.fields {
		if err := inst.DefineOwnProperty(f.name, Data(f.value())); err != nil {
			return nil, err
		}
	}
	if c.init != nil {
		if err := c.init(inst, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
