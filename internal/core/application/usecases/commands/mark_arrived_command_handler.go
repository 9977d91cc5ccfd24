package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// MarkArrivedCommandHandler handles the Accepted -> AtOrigin transition.
type MarkArrivedCommandHandler struct {
	sessionStore ports.SessionStore
	mapRefresher MapRefresher
}

// NewMarkArrivedCommandHandler creates a handler for the arrival transition.
func NewMarkArrivedCommandHandler(sessionStore ports.SessionStore, mapRefresher MapRefresher) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{
		sessionStore: sessionStore,
		mapRefresher: mapRefresher,
	}
}

// Handle processes the arrival command and refreshes the map on success.
func (h *MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.sessionStore.Update(ctx, func(sess *session.Session) error {
		return sess.MarkArrived()
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
