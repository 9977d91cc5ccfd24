package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

// Geographic bounds for WGS 84 coordinates.
const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object representing a named geographic
// coordinate: a human-readable address plus a WGS 84 latitude/longitude pair.
// The zero value is invalid and fails validation; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint("ул. Абая 12", 43.238949, 76.889709)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: ул. Абая 12 (43.238949, 76.889709)
type GeoPoint struct { //nolint:recvcheck //using for validation
	address string
	lat     float64
	lng     float64
	guard   ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with a non-empty address, a latitude within
// [MinLatitude, MaxLatitude], and a longitude within [MinLongitude, MaxLongitude].
// NaN coordinates are rejected. Returns an aggregated validation error when
// more than one field is invalid.
func NewGeoPoint(address string, lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: NewConstructorGuard(),
	}

	if err := errors.Join(
		point.setAddress(address),
		point.setLat(lat),
		point.setLng(lng),
	); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Address returns the human-readable address of the point.
func (p GeoPoint) Address() string {
	return p.address
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%s (%f, %f)", p.address, p.lat, p.lng)
}

// IsEqual compares two geo points for equality of address and coordinates.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

func (p *GeoPoint) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}
	p.lng = lng
	return nil
}
