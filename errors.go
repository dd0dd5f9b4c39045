package geodex

import "errors"

// Sentinel errors. Use errors.Is to check.
var (
	// ErrNoPoints signals an operation that requires a non-empty point set.
	ErrNoPoints = errors.New("geodex: no points")
	// ErrInvalidLatitude signals a latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("geodex: latitude out of range [-90, 90]")
	// ErrInvalidLongitude signals a longitude outside [-180, 180].
	ErrInvalidLongitude = errors.New("geodex: longitude out of range [-180, 180]")
	// ErrInvalidUnits signals an unsupported unit system value.
	ErrInvalidUnits = errors.New("geodex: invalid unit system")
)
