// Package http exposes the dispatch core over a JSON API. UI actions and
// normalized pointer events arrive here; responses carry flat views of the
// session, the catalog, and the derived map state.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/gesture"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server routes HTTP requests to the application's command and query handlers.
// It also owns the slide-to-go-online recognizer: browsers send normalized
// pointer samples and the recognizer decides when the gesture commits.
type Server struct {
	// Command handlers
	goOnlineHandler         commands.GoOnlineCommandHandler
	goOfflineHandler        commands.GoOfflineCommandHandler
	selectOrderHandler      commands.SelectOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	markArrivedHandler      commands.MarkArrivedCommandHandler
	markPickedUpHandler     commands.MarkPickedUpCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler
	getSessionHandler         queries.GetSessionQueryHandler
	getMapViewHandler         queries.GetMapViewQueryHandler

	// recognizerMu serializes the pointer event stream; the recognizer
	// itself is not safe for concurrent use.
	recognizerMu sync.Mutex
	recognizer   *gesture.Recognizer
}

// NewServer creates a server wired to the given handlers and gesture recognizer.
func NewServer(
	goOnlineHandler commands.GoOnlineCommandHandler,
	goOfflineHandler commands.GoOfflineCommandHandler,
	selectOrderHandler commands.SelectOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	markArrivedHandler commands.MarkArrivedCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getMapViewHandler queries.GetMapViewQueryHandler,
	recognizer *gesture.Recognizer,
) *Server {
	return &Server{
		goOnlineHandler:           goOnlineHandler,
		goOfflineHandler:          goOfflineHandler,
		selectOrderHandler:        selectOrderHandler,
		acceptOrderHandler:        acceptOrderHandler,
		markArrivedHandler:        markArrivedHandler,
		markPickedUpHandler:       markPickedUpHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		getAvailableOrdersHandler: getAvailableOrdersHandler,
		getSessionHandler:         getSessionHandler,
		getMapViewHandler:         getMapViewHandler,
		recognizer:                recognizer,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/session/online", s.GoOnline)
	api.POST("/session/offline", s.GoOffline)
	api.GET("/session", s.GetSession)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/select", s.SelectOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)

	api.POST("/delivery/arrived", s.MarkArrived)
	api.POST("/delivery/picked-up", s.MarkPickedUp)
	api.POST("/delivery/completed", s.CompleteDelivery)

	api.GET("/map/view", s.GetMapView)

	api.POST("/gesture/start", s.GestureStart)
	api.POST("/gesture/move", s.GestureMove)
	api.POST("/gesture/end", s.GestureEnd)
}

// GoOnline handles POST /api/v1/session/online.
func (s *Server) GoOnline(ctx echo.Context) error {
	if err := s.goOnlineHandler.Handle(ctx.Request().Context(), commands.NewGoOnlineCommand()); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GoOffline handles POST /api/v1/session/offline.
func (s *Server) GoOffline(ctx echo.Context) error {
	if err := s.goOfflineHandler.Handle(ctx.Request().Context(), commands.NewGoOfflineCommand()); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetSession handles GET /api/v1/session.
func (s *Server) GetSession(ctx echo.Context) error {
	sess, err := s.getSessionHandler.Handle(ctx.Request().Context(), queries.NewGetSessionQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, sess)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// SelectOrder handles POST /api/v1/orders/:id/select.
func (s *Server) SelectOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSelectOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.selectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkArrived handles POST /api/v1/delivery/arrived.
func (s *Server) MarkArrived(ctx echo.Context) error {
	if err := s.markArrivedHandler.Handle(ctx.Request().Context(), commands.NewMarkArrivedCommand()); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/delivery/picked-up.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	if err := s.markPickedUpHandler.Handle(ctx.Request().Context(), commands.NewMarkPickedUpCommand()); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/delivery/completed.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), commands.NewCompleteDeliveryCommand()); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkerResponse is a flat view of one map marker.
type MarkerResponse struct {
	Kind    string  `json:"kind"`
	Label   string  `json:"label,omitempty"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// PointResponse is a bare coordinate pair.
type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CameraResponse is a flat view of the camera command. Points and Padding are
// set for "fitBounds"; Center and Zoom for "centerOn".
type CameraResponse struct {
	Kind    string          `json:"kind"`
	Points  []PointResponse `json:"points,omitempty"`
	Padding int             `json:"padding,omitempty"`
	Center  *PointResponse  `json:"center,omitempty"`
	Zoom    int             `json:"zoom,omitempty"`
	Animate bool            `json:"animate"`
}

// MapViewResponse is a flat view of the derived map rendering state.
type MapViewResponse struct {
	Markers []MarkerResponse `json:"markers"`
	Camera  CameraResponse   `json:"camera"`
}

// GetMapView handles GET /api/v1/map/view.
func (s *Server) GetMapView(ctx echo.Context) error {
	view, err := s.getMapViewHandler.Handle(ctx.Request().Context(), queries.NewGetMapViewQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := MapViewResponse{
		Markers: make([]MarkerResponse, 0, len(view.Markers)),
	}
	for _, m := range view.Markers {
		response.Markers = append(response.Markers, MarkerResponse{
			Kind:    m.Kind.String(),
			Label:   m.Label,
			Address: m.Point.Address(),
			Lat:     m.Point.Lat(),
			Lng:     m.Point.Lng(),
		})
	}

	switch view.Camera.Kind {
	case services.CameraFitBounds:
		response.Camera.Kind = "fitBounds"
		response.Camera.Padding = view.Camera.Padding
		response.Camera.Points = make([]PointResponse, 0, len(view.Camera.Points))
		for _, p := range view.Camera.Points {
			response.Camera.Points = append(response.Camera.Points, PointResponse{Lat: p.Lat(), Lng: p.Lng()})
		}
	case services.CameraCenterOn:
		response.Camera.Kind = "centerOn"
		response.Camera.Center = &PointResponse{Lat: view.Camera.Center.Lat(), Lng: view.Camera.Center.Lng()}
		response.Camera.Zoom = view.Camera.Zoom
	}
	response.Camera.Animate = view.Camera.Animate

	return ctx.JSON(http.StatusOK, response)
}

// GestureStartRequest carries a normalized pointer-down sample.
type GestureStartRequest struct {
	Kind        string  `json:"kind"`
	PointerX    float64 `json:"pointerX"`
	TrackLength float64 `json:"trackLength"`
}

// GestureMoveRequest carries a normalized pointer-move sample.
type GestureMoveRequest struct {
	Kind     string  `json:"kind"`
	PointerX float64 `json:"pointerX"`
}

// GestureEndRequest carries a normalized pointer-up sample.
type GestureEndRequest struct {
	Kind string `json:"kind"`
}

// GestureStateResponse is the recognizer state after applying a sample.
// The UI positions the slider handle from Offset and Progress.
type GestureStateResponse struct {
	Dragging bool    `json:"dragging"`
	Offset   float64 `json:"offset"`
	Progress float64 `json:"progress"`
}

// GestureStart handles POST /api/v1/gesture/start.
func (s *Server) GestureStart(ctx echo.Context) error {
	var req GestureStartRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := gesture.PointerKind(req.Kind).Validate(); err != nil {
		return writeError(ctx, err)
	}

	s.recognizerMu.Lock()
	defer s.recognizerMu.Unlock()

	if err := s.recognizer.Start(req.PointerX, req.TrackLength); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, s.gestureState())
}

// GestureMove handles POST /api/v1/gesture/move.
func (s *Server) GestureMove(ctx echo.Context) error {
	var req GestureMoveRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := gesture.PointerKind(req.Kind).Validate(); err != nil {
		return writeError(ctx, err)
	}

	s.recognizerMu.Lock()
	defer s.recognizerMu.Unlock()

	s.recognizer.Move(req.PointerX)
	return ctx.JSON(http.StatusOK, s.gestureState())
}

// GestureEnd handles POST /api/v1/gesture/end.
func (s *Server) GestureEnd(ctx echo.Context) error {
	var req GestureEndRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := gesture.PointerKind(req.Kind).Validate(); err != nil {
		return writeError(ctx, err)
	}

	s.recognizerMu.Lock()
	defer s.recognizerMu.Unlock()

	s.recognizer.End()
	return ctx.JSON(http.StatusOK, s.gestureState())
}

// gestureState must be called with recognizerMu held.
func (s *Server) gestureState() GestureStateResponse {
	return GestureStateResponse{
		Dragging: s.recognizer.Dragging(),
		Offset:   s.recognizer.Offset(),
		Progress: s.recognizer.Progress(),
	}
}

func orderIDParam(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

// writeError maps domain errors to HTTP statuses: rejected lifecycle
// operations conflict, unknown ids are not found, malformed input is a bad
// request, everything else is internal.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionViolation), errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
