// Package queries contains read operations over session and catalog state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers return flat response structs fit for serialization; domain objects
// never cross the application boundary.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
)

// GetAvailableOrdersQuery retrieves the candidate orders available for
// browsing and acceptance, in stable display order.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(catalog)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("#%d %s, %s за %s\n", o.ID, o.Vendor, o.Distance, o.Fee)
//	}
type GetAvailableOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query to retrieve candidate orders.
// This is a parameterless query.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse is a flat view of one candidate order.
// Fee and Distance are pre-formatted display strings supplied by the catalog.
type GetAvailableOrdersQueryResponse struct {
	ID             int     `json:"id"`
	Vendor         string  `json:"vendor"`
	PickupAddress  string  `json:"pickupAddress"`
	PickupLat      float64 `json:"pickupLat"`
	PickupLng      float64 `json:"pickupLng"`
	DropoffAddress string  `json:"dropoffAddress"`
	DropoffLat     float64 `json:"dropoffLat"`
	DropoffLng     float64 `json:"dropoffLng"`
	Fee            string  `json:"fee"`
	Distance       string  `json:"distance"`
	PaymentType    string  `json:"paymentType"`
}
