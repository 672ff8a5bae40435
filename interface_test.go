package lazydi

import (
	"reflect"
	"testing"
)

type logSink interface{ Level() string }

type consoleSink struct{ _ byte }

func (c *consoleSink) Level() string { return "info" }

type sinkApp struct {
	Sink logSink `di.inject:""`
}

func TestInterfaceFieldInjection(t *testing.T) {
	b := Bind[logSink, consoleSink](MapBinder{})
	r := New(WithBinder(b))

	app, err := Resolve[*sinkApp](r)
	if err != nil {
		t.Fatalf("resolve app: %v", err)
	}
	if app.Sink == nil {
		t.Fatalf("expected interface field to be injected")
	}
	if got := app.Sink.Level(); got != "info" {
		t.Fatalf("expected %q, got %q", "info", got)
	}

	// The same instance is reachable under both the interface type and
	// the concrete type.
	byIface, err := Resolve[logSink](r)
	if err != nil {
		t.Fatalf("resolve interface: %v", err)
	}
	if byIface != app.Sink {
		t.Fatalf("expected interface resolution to return the injected instance")
	}

	byConcrete, err := Resolve[*consoleSink](r)
	if err != nil {
		t.Fatalf("resolve concrete: %v", err)
	}
	if logSink(byConcrete) != app.Sink {
		t.Fatalf("expected concrete resolution to return the injected instance")
	}
}

func TestInterfaceAliasesExistingConcrete(t *testing.T) {
	b := Bind[logSink, consoleSink](MapBinder{})
	r := New(WithBinder(b))

	// Resolve the concrete type first, then the interface: no second
	// instance may be constructed.
	concrete, err := Resolve[*consoleSink](r)
	if err != nil {
		t.Fatalf("resolve concrete: %v", err)
	}

	iface, err := Resolve[logSink](r)
	if err != nil {
		t.Fatalf("resolve interface: %v", err)
	}
	if iface != logSink(concrete) {
		t.Fatalf("expected interface to alias the existing concrete instance")
	}
}

func TestBindPanicsOnNonInterface(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Bind to panic for a non-interface type")
		}
	}()
	Bind[consoleSink, consoleSink](MapBinder{})
}

func TestBindPanicsOnNonImplementation(t *testing.T) {
	type other struct{ _ byte }

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Bind to panic when the type does not implement the interface")
		}
	}()
	Bind[logSink, other](MapBinder{})
}

func TestMapBinderImplementationFor(t *testing.T) {
	b := Bind[logSink, consoleSink](MapBinder{})

	impl, ok := b.ImplementationFor(reflect.TypeOf((*logSink)(nil)).Elem())
	if !ok {
		t.Fatalf("expected a binding for logSink")
	}
	if impl != reflect.TypeOf((*consoleSink)(nil)) {
		t.Fatalf("expected *consoleSink, got %v", impl)
	}

	if _, ok := b.ImplementationFor(reflect.TypeOf((*unboundSink)(nil)).Elem()); ok {
		t.Fatalf("expected no binding for unboundSink")
	}
}
