package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// GoOfflineCommandHandler handles the forced reset to the offline state.
type GoOfflineCommandHandler struct {
	sessionStore ports.SessionStore
	mapRefresher MapRefresher
}

// NewGoOfflineCommandHandler creates a handler for going offline.
func NewGoOfflineCommandHandler(sessionStore ports.SessionStore, mapRefresher MapRefresher) GoOfflineCommandHandler {
	return GoOfflineCommandHandler{
		sessionStore: sessionStore,
		mapRefresher: mapRefresher,
	}
}

// Handle processes the go-offline command and refreshes the map.
// The reset always succeeds regardless of the session's current state.
func (h *GoOfflineCommandHandler) Handle(ctx context.Context, cmd GoOfflineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.sessionStore.Update(ctx, func(sess *session.Session) error {
		sess.GoOffline()
		return nil
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
