// Package catalog provides the static, composition-time order catalog.
package catalog

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// StaticCatalog serves a fixed collection of candidate orders supplied once
// at composition time. It never changes after construction, so reads need no
// locking.
type StaticCatalog struct {
	orders []*order.Order
	byID   map[int]*order.Order
}

// NewStaticCatalog creates a catalog over the given orders. Display order is
// preserved. Every order must be constructed and ids must be unique.
func NewStaticCatalog(orders []*order.Order) (*StaticCatalog, error) {
	byID := make(map[int]*order.Order, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byID[o.ID()]; exists {
			return nil, errs.NewValueIsInvalidError("orders")
		}
		byID[o.ID()] = o
	}

	return &StaticCatalog{
		orders: orders,
		byID:   byID,
	}, nil
}

// All returns every candidate order in the order they were supplied.
func (c *StaticCatalog) All(_ context.Context) ([]*order.Order, error) {
	result := make([]*order.Order, len(c.orders))
	copy(result, c.orders)
	return result, nil
}

// Get retrieves a candidate order by its catalog identifier.
func (c *StaticCatalog) Get(_ context.Context, id int) (*order.Order, error) {
	o, exists := c.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return o, nil
}

// DefaultOrders returns the built-in candidate order seed.
func DefaultOrders() ([]*order.Order, error) {
	type seed struct {
		id          int
		vendor      string
		fromAddr    string
		fromLat     float64
		fromLng     float64
		toAddr      string
		toLat       float64
		toLng       float64
		fee         string
		distance    string
		paymentType string
	}

	seeds := []seed{
		{
			id:     1,
			vendor: "Тандыр",
			fromAddr: "пр. Абая, 12", fromLat: 43.2401, fromLng: 76.9128,
			toAddr: "мкр. Самал-1, 29", toLat: 43.2329, toLng: 76.9601,
			fee: "1 200 ₸", distance: "4.2 км", paymentType: "card",
		},
		{
			id:     2,
			vendor: "Аптека Плюс",
			fromAddr: "ул. Толе би, 59", fromLat: 43.2543, fromLng: 76.9347,
			toAddr: "ул. Жандосова, 140", toLat: 43.2215, toLng: 76.8672,
			fee: "950 ₸", distance: "7.8 км", paymentType: "cash",
		},
		{
			id:     3,
			vendor: "Lanzhou",
			fromAddr: "ул. Сатпаева, 90", fromLat: 43.2332, fromLng: 76.9552,
			toAddr: "пр. Достык, 248", toLat: 43.2163, toLng: 76.9637,
			fee: "1 500 ₸", distance: "3.1 км", paymentType: "card",
		},
	}

	orders := make([]*order.Order, 0, len(seeds))
	for _, s := range seeds {
		pointA, err := kernel.NewGeoPoint(s.fromAddr, s.fromLat, s.fromLng)
		if err != nil {
			return nil, err
		}
		pointB, err := kernel.NewGeoPoint(s.toAddr, s.toLat, s.toLng)
		if err != nil {
			return nil, err
		}
		o, err := order.NewOrder(s.id, s.vendor, pointA, pointB, s.fee, s.distance, s.paymentType)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
