package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// AcceptOrderCommandHandler handles acceptance of a catalog order.
// On success the order becomes current, the phase becomes Accepted, and any
// browsing selection is cleared.
type AcceptOrderCommandHandler struct {
	sessionStore ports.SessionStore
	orderCatalog ports.OrderCatalog
	mapRefresher MapRefresher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	sessionStore ports.SessionStore,
	orderCatalog ports.OrderCatalog,
	mapRefresher MapRefresher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		sessionStore: sessionStore,
		orderCatalog: orderCatalog,
		mapRefresher: mapRefresher,
	}
}

// Handle resolves the order in the catalog, accepts it on the session, and
// refreshes the map on success.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderCatalog.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	err = h.sessionStore.Update(ctx, func(sess *session.Session) error {
		return sess.Accept(o)
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
