package lazydi

import (
	"fmt"
	"reflect"
)

// Resolver is a lazy singleton container. The first request for a type
// constructs an instance, fills every field carrying the `di.inject` tag by
// resolving the field's type the same way, and caches the result; every
// later request for the same type returns the cached instance.
//
// A Resolver is NOT safe for concurrent use. Resolution is a synchronous
// recursive call chain; callers that share a Resolver across goroutines must
// either finish all resolution before concurrent use begins or add their own
// locking around it.
type Resolver struct {
	binder Binder
	marker Marker

	// cache maps a requested type to its singleton instance. An entry is
	// written before the instance's fields are injected, so a dependency
	// cycle back to the same type terminates on the cached instance instead
	// of constructing a second one.
	cache map[reflect.Type]any
}

// New creates a Resolver. The cache starts with a single entry mapping the
// Resolver's own type to itself, so beans may declare a `*lazydi.Resolver`
// field and have the owning Resolver injected.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		binder: MapBinder{},
		marker: TagMarker{},
		cache:  make(map[reflect.Type]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cache[reflect.TypeOf(r)] = r
	return r
}

// Resolve returns the singleton instance for the given type, constructing and
// caching it on first request.
//
// Struct types are normalized to pointer-to-struct, so
// reflect.TypeOf(Config{}) and reflect.TypeOf(&Config{}) resolve to the same
// instance. Interface types are routed through the Binder and the resulting
// instance is cached under both the interface type and the concrete type.
// Any other kind fails with ErrNotInstantiable.
//
// A dependency cycle between concrete types does not fail: the instance is
// cached before its fields are filled, so the cycle closes on the cached
// instance. Both ends of the cycle are fully wired by the time the outermost
// Resolve returns, but an Initialize hook running mid-chain may observe a
// dependency whose own fields are not yet set.
//
// On failure no instance is returned and the cache is not rolled back:
// dependencies resolved earlier in the same chain stay cached.
func (r *Resolver) Resolve(t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	t = normalize(t)

	if inst, ok := r.cache[t]; ok {
		return inst, nil
	}

	concrete := t
	if t.Kind() == reflect.Interface {
		impl, ok := r.binder.ImplementationFor(t)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoBinding, t)
		}
		concrete = normalize(impl)
		// The concrete type may have been resolved directly already;
		// alias it under the interface key instead of rebuilding.
		if inst, ok := r.cache[concrete]; ok {
			r.cache[t] = inst
			return inst, nil
		}
	}

	inst, err := newInstance(concrete)
	if err != nil {
		return nil, err
	}

	// Cache before injecting. This ordering is what terminates cycles.
	r.cache[t] = inst
	if concrete != t {
		r.cache[concrete] = inst
	}

	if _, err := r.InjectDependencies(inst); err != nil {
		return nil, err
	}

	if init, ok := inst.(Initializer); ok {
		if err := init.Initialize(); err != nil {
			return nil, fmt.Errorf("initializing %s: %w", concrete, err)
		}
	}

	return inst, nil
}

// InjectDependencies fills every injectable field of target by resolving the
// field's declared type, and returns target for chaining. Fields without the
// inject tag are left untouched.
//
// The target itself is not cached and its Initialize hook, if any, is not
// invoked; only the dependencies pulled in to fill its fields go through the
// full Resolve path. This is the entry point for objects constructed outside
// the Resolver.
func (r *Resolver) InjectDependencies(target any) (any, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: target %T is not a pointer to struct", ErrFieldNotSettable, target)
	}

	elem := rv.Elem()
	typ := elem.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !r.marker.IsInjectable(field) {
			continue
		}

		fv := elem.Field(i)
		if !fv.CanSet() {
			return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotSettable, typ, field.Name)
		}

		dep, err := r.Resolve(field.Type)
		if err != nil {
			return nil, err
		}

		dv := reflect.ValueOf(dep)
		if !dv.Type().AssignableTo(field.Type) {
			return nil, fmt.Errorf("%w: %s.%s declared as %s, resolved %s",
				ErrFieldNotSettable, typ, field.Name, field.Type, dv.Type())
		}
		fv.Set(dv)
	}

	return target, nil
}
