package mockify

import (
	"errors"
	"fmt"
)

var (
	// ErrNotWrapped is wrapped by every UsageError raised for an entity that
	// was never produced by Wrap.
	ErrNotWrapped = errors.New("entity is not wrapped")

	// ErrReservedKey is wrapped by every InvariantError.
	ErrReservedKey = errors.New("reserved configuration key")
)

// UsageError reports a control operation applied to something it cannot act
// on. It signals a mistake in test code and is never transient.
type UsageError struct {
	// Op is the control operation (e.g., "override", "restore", "getActual")
	Op string

	// Reason describes the misuse
	Reason string

	// Err is the underlying sentinel, usually ErrNotWrapped
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("promock: cannot %s: %s", e.Op, e.Reason)
}

// Unwrap returns the underlying error for error chain support.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// InvariantError reports an attempt to write the reserved configuration key
// through the object protocol instead of the control operations.
type InvariantError struct {
	// Op is the attempted protocol operation ("set", "define", "delete")
	Op string

	// Key is the offending key
	Key string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("promock: %s %q: configuration can only be changed through control operations", e.Op, e.Key)
}

// Unwrap returns ErrReservedKey.
func (e *InvariantError) Unwrap() error {
	return ErrReservedKey
}

func notWrapped(op string, entity any) *UsageError {
	return &UsageError{
		Op:     op,
		Reason: fmt.Sprintf("%T was not produced by Wrap", entity),
		Err:    ErrNotWrapped,
	}
}
