package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// MarkPickedUpCommandHandler handles the AtOrigin -> EnRouteToDestination transition.
type MarkPickedUpCommandHandler struct {
	sessionStore ports.SessionStore
	mapRefresher MapRefresher
}

// NewMarkPickedUpCommandHandler creates a handler for the pickup transition.
func NewMarkPickedUpCommandHandler(sessionStore ports.SessionStore, mapRefresher MapRefresher) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		sessionStore: sessionStore,
		mapRefresher: mapRefresher,
	}
}

// Handle processes the pickup command and refreshes the map on success.
func (h *MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.sessionStore.Update(ctx, func(sess *session.Session) error {
		return sess.MarkPickedUp()
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
