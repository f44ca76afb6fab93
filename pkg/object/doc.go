// Package object defines the structural object protocol that promock
// intercepts.
//
// Go has no dynamic proxy primitive, so every entity that can be wrapped by
// package mockify implements the explicit protocol in this package instead.
// The protocol is capability-complete: property read and write, existence
// checks, deletion, enumeration, descriptor introspection and definition,
// prototype access, extensibility, invocation and construction.
//
// # Entities
//
// Three concrete entity kinds are provided:
//
//   - Plain: an ordinary object with insertion-ordered own properties, a
//     prototype link and an extensible flag.
//   - Function: a callable entity. Its own properties act as static members.
//   - Class: a constructible entity with a prototype object, instance fields,
//     an init body and a parent class.
//
// A Class resolves its parent from its own prototype link every time it
// constructs, so rewriting that link redirects the super call:
//
//	base := object.NewClass("Base", nil).
//	    Field("a", 100).
//	    Method("hello", func(this any, args []any) (any, error) {
//	        return "base", nil
//	    })
//	child := object.NewClass("Child", base)
//	inst, err := object.New(child)
//
// # Values
//
// Property values are plain Go values (any). Values that implement Object are
// objects; everything else is a primitive and is never intercepted.
//
// # Helpers
//
// Get, Set, Invoke, Call, New, InstanceOf, Keys, Spread, Assign and Freeze
// provide the higher level operations callers usually want.
package object
