package exports

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBinding is returned when an export or import names a
	// binding the module does not have.
	ErrUnknownBinding = errors.New("unknown binding")

	// ErrDuplicateExport is returned when a name is exported twice.
	ErrDuplicateExport = errors.New("duplicate export")
)

// ExportError describes a failed export or import on a module.
type ExportError struct {
	Module string
	Name   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("module %s: %s: %v", e.Module, e.Name, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
