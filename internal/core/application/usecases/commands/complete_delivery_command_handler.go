package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// CompleteDeliveryCommandHandler handles the EnRouteToDestination -> Idle transition.
type CompleteDeliveryCommandHandler struct {
	sessionStore ports.SessionStore
	mapRefresher MapRefresher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	sessionStore ports.SessionStore,
	mapRefresher MapRefresher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		sessionStore: sessionStore,
		mapRefresher: mapRefresher,
	}
}

// Handle processes the completion command and refreshes the map on success.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.sessionStore.Update(ctx, func(sess *session.Session) error {
		return sess.MarkCompleted()
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
