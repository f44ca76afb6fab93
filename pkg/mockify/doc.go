// Package mockify intercepts objects, functions and classes so tests can
// swap their behavior at runtime and swap it back.
//
// Wrap returns a stand-in that forwards every operation of the object
// protocol to a current target: the installed implementation when there is
// one, the original otherwise. Every holder of the wrapped value observes an
// override immediately, including instances that a wrapped class built
// before the override:
//
//	Counter := mockify.Wrap(counterClass).(object.Constructor)
//	c, _ := object.New(Counter)
//
//	h, _ := mockify.Override(Counter, fakeCounter)
//	defer h.Release()
//	object.Invoke(c, "inc") // runs fakeCounter's inc
//
// PartialOverride installs an implementation that only answers the members
// it has; everything else still comes from the original. Restore, or the
// Handle returned by either override, brings the original back.
//
// # Errors
//
// Control operations on a value that was never wrapped fail with a
// *UsageError wrapping ErrNotWrapped. The Lenient option turns them into
// no-ops. Writing ConfigKey through the object protocol fails with an
// *InvariantError.
//
// # Concurrency
//
// Wrapped entities and control operations are meant for a single goroutine,
// the way a test body uses them. Instance bookkeeping alone is safe for
// concurrent use, since the garbage collector reports collected instances
// from its own goroutine.
package mockify
