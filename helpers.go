package lazydi

import (
	"fmt"
	"reflect"
)

// normalize maps struct types to pointer-to-struct so that a struct and a
// pointer to it share one cache entry.
func normalize(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Struct {
		return reflect.PointerTo(t)
	}
	return t
}

// newInstance zero-constructs an instance of the given pointer-to-struct
// type. All other kinds have no zero-argument construction the Resolver can
// perform.
func newInstance(t reflect.Type) (any, error) {
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct {
		return reflect.New(t.Elem()).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotInstantiable, t)
}

// Resolve resolves an instance typed as T from the Resolver:
//
//	logger, err := lazydi.Resolve[*Logger](r)
//
// T should be a pointer-to-struct or a bound interface type.
func Resolve[T any](r *Resolver) (T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	v, err := r.Resolve(t)
	if err != nil {
		var zero T
		return zero, err
	}

	x, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("resolved instance %T is not of requested type %s", v, t)
	}
	return x, nil
}

// MustResolve is like [Resolve] but panics on failure.
// Prefer Resolve in production code to handle errors gracefully.
func MustResolve[T any](r *Resolver) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}
