package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order offered to the operator. It is an
// immutable value object owned by the order catalog; the dispatch core only
// ever holds references to orders and never changes their fields.
//
// Order invariants:
//   - id is positive and unique within the catalog
//   - vendor is non-empty
//   - pointA (pickup) and pointB (dropoff) are valid geo points
//   - fee, distance, and paymentType are non-empty display strings
//
// Example:
//
//	pointA, _ := kernel.NewGeoPoint("Кафе «Тандыр», ул. Абая 12", 43.238949, 76.889709)
//	pointB, _ := kernel.NewGeoPoint("мкр. Самал-2, д. 33", 43.233741, 76.955825)
//	o, err := order.NewOrder(1, "Тандыр", pointA, pointB, "1 200 ₸", "4.2 км", "card")
//	if err != nil {
//	    // Handle validation error
//	}
type Order struct {
	// id is the catalog-assigned unique identifier
	id int

	// vendor is the display name of the originating vendor
	vendor string

	// pointA is the pickup location
	pointA kernel.GeoPoint

	// pointB is the dropoff location
	pointB kernel.GeoPoint

	// fee is the display-formatted courier fee
	fee string

	// distance is the display-formatted route distance
	distance string

	// paymentType tags the payment method (e.g. "card", "cash")
	paymentType string

	// guard ensures the order was created via NewOrder
	guard kernel.ConstructorGuard
}

// NewOrder creates a validated, immutable Order.
//
// Parameters:
//   - id: catalog-assigned identifier (must be positive)
//   - vendor: vendor display name (must be non-empty)
//   - pointA: pickup location (must be a valid geo point)
//   - pointB: dropoff location (must be a valid geo point)
//   - fee: display-formatted courier fee (must be non-empty)
//   - distance: display-formatted route distance (must be non-empty)
//   - paymentType: payment method tag (must be non-empty)
//
// Returns the order, or an aggregated validation error naming every invalid field.
func NewOrder(
	id int,
	vendor string,
	pointA kernel.GeoPoint,
	pointB kernel.GeoPoint,
	fee string,
	distance string,
	paymentType string,
) (*Order, error) {
	o := &Order{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendor(vendor),
		o.setPointA(pointA),
		o.setPointB(pointB),
		o.setFee(fee),
		o.setDistance(distance),
		o.setPaymentType(paymentType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their catalog identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the catalog-assigned identifier.
func (o *Order) ID() int {
	return o.id
}

// Vendor returns the vendor display name.
func (o *Order) Vendor() string {
	return o.vendor
}

// PointA returns the pickup location.
func (o *Order) PointA() kernel.GeoPoint {
	return o.pointA
}

// PointB returns the dropoff location.
func (o *Order) PointB() kernel.GeoPoint {
	return o.pointB
}

// Fee returns the display-formatted courier fee.
func (o *Order) Fee() string {
	return o.fee
}

// Distance returns the display-formatted route distance.
func (o *Order) Distance() string {
	return o.distance
}

// PaymentType returns the payment method tag.
func (o *Order) PaymentType() string {
	return o.paymentType
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setVendor(vendor string) error {
	if vendor == "" {
		return errs.NewValueIsRequiredError("vendor")
	}
	o.vendor = vendor
	return nil
}

func (o *Order) setPointA(pointA kernel.GeoPoint) error {
	if err := pointA.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pointA", err)
	}
	o.pointA = pointA
	return nil
}

func (o *Order) setPointB(pointB kernel.GeoPoint) error {
	if err := pointB.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pointB", err)
	}
	o.pointB = pointB
	return nil
}

func (o *Order) setFee(fee string) error {
	if fee == "" {
		return errs.NewValueIsRequiredError("fee")
	}
	o.fee = fee
	return nil
}

func (o *Order) setDistance(distance string) error {
	if distance == "" {
		return errs.NewValueIsRequiredError("distance")
	}
	o.distance = distance
	return nil
}

func (o *Order) setPaymentType(paymentType string) error {
	if paymentType == "" {
		return errs.NewValueIsRequiredError("paymentType")
	}
	o.paymentType = paymentType
	return nil
}
