package queries

import (
	"context"

	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/ports"
)

// GetSessionQueryHandler reads the session and flattens it into a response struct.
type GetSessionQueryHandler struct {
	sessionStore ports.SessionStore
}

// NewGetSessionQueryHandler creates a handler for session state queries.
func NewGetSessionQueryHandler(sessionStore ports.SessionStore) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessionStore: sessionStore}
}

// Handle returns the current session state.
func (h GetSessionQueryHandler) Handle(
	ctx context.Context,
	query GetSessionQuery,
) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	var response GetSessionQueryResponse
	err := h.sessionStore.View(ctx, func(sess *session.Session) error {
		response = GetSessionQueryResponse{
			Online: sess.Online(),
			Phase:  sess.Phase().String(),
		}

		if selected := sess.SelectedOrder(); selected != nil {
			id := selected.ID()
			response.SelectedOrderID = &id
		}
		if current := sess.CurrentOrder(); current != nil {
			id := current.ID()
			response.CurrentOrderID = &id
		}
		return nil
	})
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	return response, nil
}
