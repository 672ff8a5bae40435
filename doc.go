// Package lazydi is a minimal, reflection-based singleton resolver.
//
// Unlike a register-then-build container, lazydi constructs objects on
// demand: requesting a type zero-constructs an instance, fills every field
// tagged `di.inject` by resolving the field's type the same way, and caches
// the result. Each type is constructed at most once per Resolver; later
// requests return the cached instance.
//
// # Quick Start
//
//	type Config struct{}
//
//	type Service struct {
//		Config *Config `di.inject:""`
//	}
//
//	r := lazydi.New()
//	svc, err := lazydi.Resolve[*Service](r)
//
// No registration step is needed for concrete types; the dependency graph is
// discovered from the tagged fields.
//
// # Interface Bindings
//
// Interface-typed requests (and interface-typed fields) are routed through a
// [Binder] that maps the interface to a concrete type:
//
//	b := lazydi.Bind[Logger, ConsoleLogger](lazydi.MapBinder{})
//	r := lazydi.New(lazydi.WithBinder(b))
//
//	log, err := lazydi.Resolve[Logger](r) // *ConsoleLogger
//
// Resolving an interface with no binding fails with [ErrNoBinding].
//
// # Lifecycle
//
// An instance may implement [Initializer]; its Initialize method runs exactly
// once, after all of the instance's injectable fields are filled and before
// the constructing Resolve call returns.
//
// # Externally Constructed Objects
//
// [Resolver.InjectDependencies] fills the tagged fields of an object built
// outside the Resolver. The object itself is neither cached nor initialized;
// only its dependencies are resolved.
//
// A Resolver is not safe for concurrent use; see [Resolver].
package lazydi
