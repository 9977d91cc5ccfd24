package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetAvailableOrdersQueryHandler reads candidate orders from the catalog and
// flattens them into response structs.
type GetAvailableOrdersQueryHandler struct {
	orderCatalog ports.OrderCatalog
}

// NewGetAvailableOrdersQueryHandler creates a handler for candidate order queries.
func NewGetAvailableOrdersQueryHandler(orderCatalog ports.OrderCatalog) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{orderCatalog: orderCatalog}
}

// Handle returns every candidate order in the catalog's display order.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalogOrders, err := h.orderCatalog.All(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0, len(catalogOrders))
	for _, o := range catalogOrders {
		pointA := o.PointA()
		pointB := o.PointB()

		orders = append(orders, GetAvailableOrdersQueryResponse{
			ID:             o.ID(),
			Vendor:         o.Vendor(),
			PickupAddress:  pointA.Address(),
			PickupLat:      pointA.Lat(),
			PickupLng:      pointA.Lng(),
			DropoffAddress: pointB.Address(),
			DropoffLat:     pointB.Lat(),
			DropoffLng:     pointB.Lng(),
			Fee:            o.Fee(),
			Distance:       o.Distance(),
			PaymentType:    o.PaymentType(),
		})
	}

	return orders, nil
}
