package services

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/session"
	"dispatch/internal/pkg/errs"
)

// Default camera parameters used by the composition root.
const (
	// DefaultFitPadding is the pixel padding applied around fit-bounds framing.
	DefaultFitPadding = 48
	// DefaultCenterZoom is the zoom level used when centering on the courier.
	DefaultCenterZoom = 15
)

// Marker labels for the relevant order's endpoints.
const (
	// OriginLabel tags the pickup marker.
	OriginLabel = "A"
	// DestinationLabel tags the dropoff marker.
	DestinationLabel = "B"
)

// MarkerKind distinguishes marker roles for styling on the map surface.
type MarkerKind int

const (
	// MarkerUnknown represents an invalid or undefined marker kind.
	MarkerUnknown MarkerKind = iota

	// MarkerCourier is the operator's own position.
	MarkerCourier

	// MarkerOrigin is the pickup point of the relevant order.
	MarkerOrigin

	// MarkerDestination is the dropoff point of the relevant order.
	MarkerDestination
)

// String returns the wire-friendly name of the marker kind.
func (k MarkerKind) String() string {
	switch k {
	case MarkerCourier:
		return "courier"
	case MarkerOrigin:
		return "origin"
	case MarkerDestination:
		return "destination"
	default:
		return "unknown"
	}
}

// Marker is a single map marker to render. Every render fully replaces the
// marker set; markers carry no identity across renders.
type Marker struct {
	// Kind is the marker role, used for styling.
	Kind MarkerKind
	// Label is the short on-marker tag ("A"/"B"); empty for the courier marker.
	Label string
	// Point is the marker position.
	Point kernel.GeoPoint
}

// CameraKind distinguishes the two viewport commands the map surface supports.
type CameraKind int

const (
	// CameraUnknown represents an invalid or undefined camera command.
	CameraUnknown CameraKind = iota

	// CameraFitBounds frames the viewport to contain a set of points with padding.
	CameraFitBounds

	// CameraCenterOn centers the viewport on a single point at a fixed zoom.
	CameraCenterOn
)

// Camera is the viewport command derived from the session state.
// For CameraFitBounds, Points and Padding are set; for CameraCenterOn,
// Center and Zoom are set. Both commands are animated.
type Camera struct {
	Kind    CameraKind
	Points  []kernel.GeoPoint
	Padding int
	Center  kernel.GeoPoint
	Zoom    int
	Animate bool
}

// MapView is the full derived rendering state for one render pass.
type MapView struct {
	Markers []Marker
	Camera  Camera
}

// ErrMapViewBuilderIsNotConstructed is returned when a MapViewBuilder was not
// created via NewMapViewBuilder.
var ErrMapViewBuilderIsNotConstructed = errs.NewValueIsRequiredError(
	"map view builder must be created via NewMapViewBuilder constructor")

// MapViewBuilder derives the marker set and camera command from the session
// state and the courier position. Build is a pure function: it performs no
// I/O and never mutates its inputs, so it is testable without a real map.
//
// Rules:
//   - a courier marker is always present at the courier position
//   - the relevant order is the current order if present, else the selected order
//   - with a relevant order: origin "A" and destination "B" markers, and an
//     animated fit-bounds over courier+A+B with the configured padding
//   - without one: an animated center-on the courier at the configured zoom
type MapViewBuilder struct {
	padding int
	zoom    int
	guard   kernel.ConstructorGuard
}

// NewMapViewBuilder creates a builder with the given fit-bounds padding (px)
// and center-on zoom level. Both must be positive.
func NewMapViewBuilder(padding int, zoom int) (MapViewBuilder, error) {
	if padding <= 0 {
		return MapViewBuilder{}, errs.NewValueIsInvalidError("padding")
	}
	if zoom <= 0 {
		return MapViewBuilder{}, errs.NewValueIsInvalidError("zoom")
	}

	return MapViewBuilder{
		padding: padding,
		zoom:    zoom,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the builder was created via NewMapViewBuilder.
func (b MapViewBuilder) Validate() error {
	return b.guard.Validate(ErrMapViewBuilderIsNotConstructed)
}

// Build computes the map view for the given session and courier position.
func (b MapViewBuilder) Build(sess *session.Session, courierPosition kernel.GeoPoint) (MapView, error) {
	if err := b.Validate(); err != nil {
		return MapView{}, err
	}
	if err := sess.Validate(); err != nil {
		return MapView{}, err
	}
	if err := courierPosition.Validate(); err != nil {
		return MapView{}, err
	}

	markers := []Marker{
		{Kind: MarkerCourier, Point: courierPosition},
	}

	relevant := sess.RelevantOrder()
	if relevant == nil {
		return MapView{
			Markers: markers,
			Camera: Camera{
				Kind:    CameraCenterOn,
				Center:  courierPosition,
				Zoom:    b.zoom,
				Animate: true,
			},
		}, nil
	}

	markers = append(markers,
		Marker{Kind: MarkerOrigin, Label: OriginLabel, Point: relevant.PointA()},
		Marker{Kind: MarkerDestination, Label: DestinationLabel, Point: relevant.PointB()},
	)

	return MapView{
		Markers: markers,
		Camera: Camera{
			Kind:    CameraFitBounds,
			Points:  []kernel.GeoPoint{courierPosition, relevant.PointA(), relevant.PointB()},
			Padding: b.padding,
			Animate: true,
		},
	}, nil
}
