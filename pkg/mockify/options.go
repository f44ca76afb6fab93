package mockify

// ControlOption adjusts a single control operation.
type ControlOption func(*controlOptions)

type controlOptions struct {
	lenient bool
	set     bool
}

// Lenient makes a control operation on an unwrapped entity a silent no-op:
// Override and PartialOverride return an inert handle, Restore and
// SetPropertyDescriptorSource do nothing, and GetActual returns its input.
func Lenient() ControlOption {
	return func(o *controlOptions) {
		o.lenient = true
		o.set = true
	}
}

// Strict makes a control operation on an unwrapped entity fail with a
// UsageError, regardless of the engine configuration.
func Strict() ControlOption {
	return func(o *controlOptions) {
		o.lenient = false
		o.set = true
	}
}

// lenient resolves the options against the engine's configured default.
func lenient(e *Engine, opts []ControlOption) bool {
	var o controlOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.set {
		return o.lenient
	}
	return e.cfg.Lenient
}
