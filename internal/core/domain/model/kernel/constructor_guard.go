package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their designated
// constructor from zero values. Embedding a guard in a value object lets
// Validate detect structs that bypassed construction and therefore skipped
// their invariant checks.
//
// Example:
//
//	type GeoPoint struct {
//	    address string
//	    lat     float64
//	    lng     float64
//	    guard   ConstructorGuard
//	}
//
//	func NewGeoPoint(address string, lat, lng float64) (GeoPoint, error) {
//	    // ... validation ...
//	    return GeoPoint{address: address, lat: lat, lng: lng, guard: NewConstructorGuard()}, nil
//	}
//
//	func (p GeoPoint) Validate() error {
//	    return p.guard.Validate(ErrGeoPointIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
