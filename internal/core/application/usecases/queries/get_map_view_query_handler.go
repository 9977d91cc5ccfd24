package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetMapViewQueryHandler derives the map view from the session state and the
// courier's position.
type GetMapViewQueryHandler struct {
	sessionStore    ports.SessionStore
	viewBuilder     services.MapViewBuilder
	courierPosition kernel.GeoPoint
}

// NewGetMapViewQueryHandler creates a handler for map view queries.
func NewGetMapViewQueryHandler(
	sessionStore ports.SessionStore,
	viewBuilder services.MapViewBuilder,
	courierPosition kernel.GeoPoint,
) GetMapViewQueryHandler {
	return GetMapViewQueryHandler{
		sessionStore:    sessionStore,
		viewBuilder:     viewBuilder,
		courierPosition: courierPosition,
	}
}

// Handle computes the map view for the current session state.
func (h GetMapViewQueryHandler) Handle(
	ctx context.Context,
	query GetMapViewQuery,
) (services.MapView, error) {
	if err := query.Validate(); err != nil {
		return services.MapView{}, err
	}

	var view services.MapView
	err := h.sessionStore.View(ctx, func(sess *session.Session) error {
		built, buildErr := h.viewBuilder.Build(sess, h.courierPosition)
		if buildErr != nil {
			return buildErr
		}
		view = built
		return nil
	})
	if err != nil {
		return services.MapView{}, err
	}

	return view, nil
}
