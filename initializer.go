package lazydi

// Initializer is an optional interface an instance may implement to perform
// additional setup after all of its injectable fields have been filled.
//
// The Resolver calls Initialize exactly once per instance, at the end of the
// Resolve call that constructed it and before the instance is returned. An
// error from Initialize fails that resolution chain; the instance remains
// cached and the hook is not retried on later requests.
//
// Objects handed directly to InjectDependencies are not initialized; only
// the dependencies constructed on their behalf are.
type Initializer interface {
	Initialize() error
}
