package commands

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// GoOnlineCommandHandler handles the transition to the online state.
// The phase is not affected; rejections leave the session untouched.
type GoOnlineCommandHandler struct {
	sessionStore ports.SessionStore
	mapRefresher MapRefresher
}

// NewGoOnlineCommandHandler creates a handler for going online.
func NewGoOnlineCommandHandler(sessionStore ports.SessionStore, mapRefresher MapRefresher) GoOnlineCommandHandler {
	return GoOnlineCommandHandler{
		sessionStore: sessionStore,
		mapRefresher: mapRefresher,
	}
}

// Handle processes the go-online command and refreshes the map on success.
func (h *GoOnlineCommandHandler) Handle(ctx context.Context, cmd GoOnlineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.sessionStore.Update(ctx, func(sess *session.Session) error {
		return sess.GoOnline()
	})
	if err != nil {
		return err
	}

	return h.mapRefresher.Refresh(ctx)
}
