package commands

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// RefreshMapCommandHandler projects the session state onto the map surface.
// Surface failures degrade visuals only: they are logged and never propagated,
// so a broken map can never corrupt or block the order lifecycle.
type RefreshMapCommandHandler struct {
	sessionStore    ports.SessionStore
	mapSurface      ports.MapSurface
	viewBuilder     services.MapViewBuilder
	courierPosition kernel.GeoPoint
	log             *zap.Logger
}

// NewRefreshMapCommandHandler creates a handler that renders the session state
// onto the given surface using the courier's fixed position.
func NewRefreshMapCommandHandler(
	sessionStore ports.SessionStore,
	mapSurface ports.MapSurface,
	viewBuilder services.MapViewBuilder,
	courierPosition kernel.GeoPoint,
	log *zap.Logger,
) RefreshMapCommandHandler {
	return RefreshMapCommandHandler{
		sessionStore:    sessionStore,
		mapSurface:      mapSurface,
		viewBuilder:     viewBuilder,
		courierPosition: courierPosition,
		log:             log,
	}
}

// Refresh renders the current session state. It satisfies the MapRefresher
// interface so mutating handlers can trigger a render after each state change.
func (h *RefreshMapCommandHandler) Refresh(ctx context.Context) error {
	return h.Handle(ctx, NewRefreshMapCommand())
}

// Handle builds the map view and pushes it to the surface. The render is
// skipped when no surface is attached; it resumes on the next state change
// or resize tick once a surface appears.
func (h *RefreshMapCommandHandler) Handle(ctx context.Context, cmd RefreshMapCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.mapSurface.Ready() {
		h.log.Debug("map surface not ready, skipping render")
		return nil
	}

	// MapView carries only value copies, so it is safe to push to the
	// surface after the store releases its lock.
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
		return err
	}

	if err = h.mapSurface.SetMarkers(ctx, view.Markers); err != nil {
		h.log.Warn("failed to set markers", zap.Error(err))
		return nil
	}

	switch view.Camera.Kind {
	case services.CameraFitBounds:
		err = h.mapSurface.FitBounds(ctx, view.Camera.Points, view.Camera.Padding, view.Camera.Animate)
	case services.CameraCenterOn:
		err = h.mapSurface.CenterOn(ctx, view.Camera.Center, view.Camera.Zoom, view.Camera.Animate)
	}
	if err != nil {
		h.log.Warn("failed to move camera", zap.Error(err))
	}

	return nil
}
