package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderCatalog defines the read-only contract for the externally supplied
// collection of candidate orders. The catalog is provided once at composition
// time; the core never mutates it.
type OrderCatalog interface {
	// All returns every candidate order in stable display order.
	All(ctx context.Context) ([]*order.Order, error)

	// Get retrieves a candidate order by its catalog identifier.
	// Returns *errs.ObjectNotFoundError when no order carries the id.
	Get(ctx context.Context, id int) (*order.Order, error)
}
