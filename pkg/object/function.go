package object

// Function is a callable entity. Its own properties act as static members.
type Function struct {
	*Plain
	name string
	body Func
}

// NewFunction creates a function with the given name and native body.
// The name is exposed as the non-enumerable "name" property.
func NewFunction(name string, body Func) *Function {
	f := &Function{Plain: NewPlain(nil), name: name, body: body}
	f.self = f
	f.props["name"] = Descriptor{Value: name, Configurable: true}
	f.keys = append(f.keys, "name")
	return f
}

// Name returns the name the function was created with.
func (f *Function) Name() string {
	return f.name
}

// Static defines an enumerable static member and returns f.
func (f *Function) Static(key string, value any) *Function {
	f.With(key, value)
	return f
}

// Call invokes the native body.
func (f *Function) Call(this any, args ...any) (any, error) {
	if f.body == nil {
		return nil, nil
	}
	return f.body(this, args)
}

// NameOf returns the "name" property of v, or "" when v has none.
func NameOf(v any) string {
	o, ok := v.(Object)
	if !ok {
		return ""
	}
	name, _ := o.Get("name", o).(string)
	return name
}
