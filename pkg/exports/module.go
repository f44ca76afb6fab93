package exports

import (
	"fmt"
	"sync"

	"mercator-hq/promock/pkg/mockify"
	"mercator-hq/promock/pkg/object"
)

// OptOutDirective disables wrapping for a module when it appears in the
// module's directive prologue.
const OptOutDirective = "__do_not_mockify__"

// DefaultExport is the export name of a module's default export.
const DefaultExport = "default"

// Module holds the bindings of one module and the values it publishes.
//
// Exported values are computed when they are exported. Exporting the same
// binding under several names publishes the same wrapped value, and
// declaring a binding again afterwards does not change what was exported.
type Module struct {
	name   string
	optOut bool
	engine *mockify.Engine

	mu      sync.RWMutex
	locals  map[string]any
	wrapped map[string]any
	exports map[string]any
	order   []string
}

// New creates a module. directives is the module's directive prologue.
func New(name string, directives ...string) *Module {
	m := &Module{
		name:    name,
		locals:  make(map[string]any),
		wrapped: make(map[string]any),
		exports: make(map[string]any),
	}
	for _, d := range directives {
		if d == OptOutDirective {
			m.optOut = true
			break
		}
	}
	return m
}

// WithEngine makes the module wrap its exports through e instead of the
// default engine, and returns m.
func (m *Module) WithEngine(e *mockify.Engine) *Module {
	m.engine = e
	return m
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// OptedOut reports whether the module publishes raw values.
func (m *Module) OptedOut() bool {
	return m.optOut
}

// Declare binds name inside the module without exporting it and returns m.
func (m *Module) Declare(name string, value any) *Module {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locals[name] = value
	delete(m.wrapped, name)
	return m
}

// Export declares name and exports it under the same name.
func (m *Module) Export(name string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.exports[name]; ok {
		return &ExportError{Module: m.name, Name: name, Err: ErrDuplicateExport}
	}
	m.locals[name] = value
	delete(m.wrapped, name)
	m.publish(name, m.wrapLocal(name))
	return nil
}

// Rename exports the binding local under the name exported.
func (m *Module) Rename(local, exported string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locals[local]; !ok {
		return &ExportError{Module: m.name, Name: local, Err: ErrUnknownBinding}
	}
	if _, ok := m.exports[exported]; ok {
		return &ExportError{Module: m.name, Name: exported, Err: ErrDuplicateExport}
	}
	m.publish(exported, m.wrapLocal(local))
	return nil
}

// Default sets the module's default export. value does not become a
// binding of the module.
func (m *Module) Default(value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.exports[DefaultExport]; ok {
		return &ExportError{Module: m.name, Name: DefaultExport, Err: ErrDuplicateExport}
	}
	m.publish(DefaultExport, m.wrap(value))
	return nil
}

// ReExport publishes from's export name under as, exactly as from
// publishes it. An empty as keeps the name.
func (m *Module) ReExport(from *Module, name, as string) error {
	value, err := from.Import(name)
	if err != nil {
		return err
	}
	if as == "" {
		as = name
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.exports[as]; ok {
		return &ExportError{Module: m.name, Name: as, Err: ErrDuplicateExport}
	}
	m.publish(as, value)
	return nil
}

// Local returns the raw binding name, as code inside the module sees it.
func (m *Module) Local(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.locals[name]
	return v, ok
}

// Import returns the value published under name, as other modules see it.
func (m *Module) Import(name string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.exports[name]
	if !ok {
		return nil, &ExportError{Module: m.name, Name: name, Err: ErrUnknownBinding}
	}
	return v, nil
}

// Names returns the export names in the order they were exported.
func (m *Module) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Namespace returns a frozen object holding every export, keyed by export
// name in export order. It panics if the namespace cannot be frozen, which
// only a broken object implementation can cause.
func (m *Module) Namespace() object.Object {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ns := object.NewPlain(nil)
	for _, name := range m.order {
		ns.With(name, m.exports[name])
	}
	if err := object.Freeze(ns); err != nil {
		panic(fmt.Sprintf("exports: cannot freeze namespace of module %s: %v", m.name, err))
	}
	return ns
}

func (m *Module) publish(name string, value any) {
	m.exports[name] = value
	m.order = append(m.order, name)
}

// wrapLocal wraps the binding local once per declaration.
func (m *Module) wrapLocal(local string) any {
	if v, ok := m.wrapped[local]; ok {
		return v
	}
	v := m.wrap(m.locals[local])
	m.wrapped[local] = v
	return v
}

func (m *Module) wrap(value any) any {
	if m.optOut {
		return value
	}
	if m.engine != nil {
		return m.engine.Wrap(value)
	}
	return mockify.Wrap(value)
}
