package lazydi

// Option configures a Resolver during construction.
type Option func(*Resolver)

// WithBinder sets the Binder consulted for interface types. The default is an
// empty [MapBinder], under which every interface resolution fails with
// [ErrNoBinding].
func WithBinder(b Binder) Option {
	return func(r *Resolver) {
		if b != nil {
			r.binder = b
		}
	}
}

// WithMarker sets the Marker that decides which fields are injectable. The
// default is [TagMarker] with the `di.inject` tag.
func WithMarker(m Marker) Option {
	return func(r *Resolver) {
		if m != nil {
			r.marker = m
		}
	}
}
