package lazydi

import (
	"fmt"
	"reflect"
)

// Binder answers which concrete type satisfies an interface type. The
// Resolver consults it whenever an interface type is requested and no cached
// instance exists yet.
//
// Implementations should be side-effect free; the Resolver may query the same
// interface type more than once.
type Binder interface {
	// ImplementationFor returns the concrete type bound to iface.
	// ok is false when no binding exists.
	ImplementationFor(iface reflect.Type) (impl reflect.Type, ok bool)
}

// MapBinder is a Binder backed by a plain map from interface type to concrete
// type. Populate it with [Bind] and hand it to [New] via [WithBinder].
type MapBinder map[reflect.Type]reflect.Type

// ImplementationFor implements Binder.
func (b MapBinder) ImplementationFor(iface reflect.Type) (reflect.Type, bool) {
	impl, ok := b[iface]
	return impl, ok
}

// Bind records that interface type I is satisfied by concrete type C and
// returns the binder for chaining:
//
//	b := lazydi.Bind[Logger, ConsoleLogger](lazydi.MapBinder{})
//
// It panics if I is not an interface type or *C does not implement I; a bad
// binding is a programming error and should fail at wiring time, not when the
// interface is first resolved.
func Bind[I any, C any](b MapBinder) MapBinder {
	iface := reflect.TypeOf((*I)(nil)).Elem()
	impl := reflect.TypeOf((*C)(nil))
	if iface.Kind() != reflect.Interface {
		panic(fmt.Sprintf("lazydi: Bind target %s is not an interface", iface))
	}
	if !impl.Implements(iface) {
		panic(fmt.Sprintf("lazydi: %s does not implement %s", impl, iface))
	}
	b[iface] = impl
	return b
}
