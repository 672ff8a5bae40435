package lazydi

import "reflect"

// Marker decides whether a struct field wants injection. The Resolver asks it
// for every field of a type being injected; fields it rejects are left
// untouched.
type Marker interface {
	IsInjectable(field reflect.StructField) bool
}

// TagMarker marks fields that carry the `di.inject` struct tag. Only the
// presence of the tag matters; its value is ignored.
type TagMarker struct {
	// Tag overrides the tag key looked up on each field. Empty means the
	// default `di.inject`.
	Tag string
}

// IsInjectable implements Marker.
func (m TagMarker) IsInjectable(field reflect.StructField) bool {
	key := m.Tag
	if key == "" {
		key = string(inject)
	}
	_, ok := field.Tag.Lookup(key)
	return ok
}
