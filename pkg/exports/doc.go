// Package exports publishes the bindings of a module the way the build-time
// transform does: every exported value is wrapped once, while code inside
// the module keeps using the raw binding.
//
// A module declares its bindings and exports:
//
//	m := exports.New("greeter")
//	m.Export("Greeter", greeterClass)   // export class Greeter
//	m.Declare("greet", greetFn)
//	m.Rename("greet", "sayHello")      // export { greet as sayHello }
//	m.Default(object.NewPlain(nil))    // export default {}
//
// Consumers go through Import or Namespace and receive the wrapped values,
// so mockify.Override on an import changes what every consumer sees. The
// module's own calls through Local are not affected.
//
// A module whose directive prologue contains OptOutDirective publishes its
// values unwrapped.
package exports
