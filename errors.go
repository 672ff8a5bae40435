package lazydi

import "errors"

var (
	ErrNilType          = errors.New("type parameter is nil")
	ErrNilTarget        = errors.New("target parameter is nil")
	ErrNoBinding        = errors.New("no implementation bound for interface")
	ErrNotInstantiable  = errors.New("type cannot be instantiated")
	ErrFieldNotSettable = errors.New("injectable field cannot be set")
)
