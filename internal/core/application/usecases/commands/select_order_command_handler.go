package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// SelectOrderCommandHandler handles browsing-selection toggles.
// Requires the operator to be online with no order in progress.
type SelectOrderCommandHandler struct {
	sessionStore ports.SessionStore
	orderCatalog ports.OrderCatalog
	mapRefresher MapRefresher
}

// NewSelectOrderCommandHandler creates a handler for selection toggles.
func NewSelectOrderCommandHandler(
	sessionStore ports.SessionStore,
	orderCatalog ports.OrderCatalog,
	mapRefresher MapRefresher,
) SelectOrderCommandHandler {
	return SelectOrderCommandHandler{
		sessionStore: sessionStore,
		orderCatalog: orderCatalog,
		mapRefresher: mapRefresher,
	}
}

// Handle resolves the order in the catalog, toggles the selection on the
// session, and refreshes the map on success.
func (h *SelectOrderCommandHandler) Handle(ctx context.Context, cmd SelectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderCatalog.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	err = h.sessionStore.Update(ctx, func(sess *session.Session) error {
		return sess.Select(o)
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
