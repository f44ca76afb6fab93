package object

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is returned when writing a non-writable data property or an
	// accessor property without a setter.
	ErrReadOnly = errors.New("property is read-only")

	// ErrNotExtensible is returned when adding a property to, or changing the
	// prototype of, a non-extensible object.
	ErrNotExtensible = errors.New("object is not extensible")

	// ErrNotConfigurable is returned when deleting or redefining a
	// non-configurable property.
	ErrNotConfigurable = errors.New("property is not configurable")

	// ErrCyclicPrototype is returned when a prototype change would create a
	// cycle in the prototype chain.
	ErrCyclicPrototype = errors.New("cyclic prototype chain")
)

// PropertyError reports a failed property operation.
type PropertyError struct {
	// Op is the operation that failed (e.g., "set", "define", "delete")
	Op string

	// Key is the property key
	Key string

	// Err is the underlying sentinel error
	Err error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error for error chain support.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// TypeError reports an operation applied to a value of the wrong kind, such
// as calling something that is not callable.
type TypeError struct {
	// Op is the attempted operation (e.g., "call", "construct", "invoke")
	Op string

	// Message describes the offending value
	Message string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s: %s", e.Op, e.Message)
}

func propertyError(op, key string, err error) error {
	return &PropertyError{Op: op, Key: key, Err: err}
}
