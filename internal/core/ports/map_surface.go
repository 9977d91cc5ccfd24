package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// MapSurface defines the contract of the external mapping widget. The core
// drives the surface through this port; the tile/basemap source behind it is
// an external network resource whose unavailability degrades visuals only,
// never core state.
//
// Renders are skipped while Ready reports false: an absent surface is not a
// fatal condition, and rendering resumes once the surface appears.
type MapSurface interface {
	// Ready reports whether a surface exists to render onto.
	Ready() bool

	// SetMarkers fully replaces the marker set.
	SetMarkers(ctx context.Context, markers []services.Marker) error

	// FitBounds frames the viewport to contain the given points with padding.
	FitBounds(ctx context.Context, points []kernel.GeoPoint, padding int, animate bool) error

	// CenterOn centers the viewport on a single point at the given zoom.
	CenterOn(ctx context.Context, point kernel.GeoPoint, zoom int, animate bool) error

	// InvalidateSize reconciles the surface's internal size with its container.
	InvalidateSize(ctx context.Context) error
}
