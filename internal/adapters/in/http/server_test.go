package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/catalog"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/gesture"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMapViewQueryHandler(t *testing.T, store *memory.SessionStore) queries.GetMapViewQueryHandler {
	t.Helper()

	builder, err := services.NewMapViewBuilder(services.DefaultFitPadding, services.DefaultCenterZoom)
	require.NoError(t, err)
	position, err := kernel.NewGeoPoint("мкр. Самал-2, 58", 43.2310, 76.9550)
	require.NoError(t, err)
	return queries.NewGetMapViewQueryHandler(store, builder, position)
}

// newTestAPI wires the full stack over in-memory adapters with a no-op map
// refresher, mirroring the composition root minus the websocket surface.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewSessionStore()

	orders, err := catalog.DefaultOrders()
	require.NoError(t, err)
	orderCatalog, err := catalog.NewStaticCatalog(orders)
	require.NoError(t, err)

	refresher := commands.FuncMapRefresher(func(_ context.Context) error { return nil })

	goOnlineHandler := commands.NewGoOnlineCommandHandler(store, refresher)
	recognizer, err := gesture.NewRecognizer(func() {
		_ = goOnlineHandler.Handle(context.Background(), commands.NewGoOnlineCommand())
	})
	require.NoError(t, err)

	server := httpin.NewServer(
		goOnlineHandler,
		commands.NewGoOfflineCommandHandler(store, refresher),
		commands.NewSelectOrderCommandHandler(store, orderCatalog, refresher),
		commands.NewAcceptOrderCommandHandler(store, orderCatalog, refresher),
		commands.NewMarkArrivedCommandHandler(store, refresher),
		commands.NewMarkPickedUpCommandHandler(store, refresher),
		commands.NewCompleteDeliveryCommandHandler(store, refresher),
		queries.NewGetAvailableOrdersQueryHandler(orderCatalog),
		queries.NewGetSessionQueryHandler(store),
		newMapViewQueryHandler(t, store),
		recognizer,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func getSession(t *testing.T, e *echo.Echo) queries.GetSessionQueryResponse {
	t.Helper()

	rec := doRequest(t, e, http.MethodGet, "/api/v1/session", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sess queries.GetSessionQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	return sess
}

func TestServer_SessionLifecycle(t *testing.T) {
	e := newTestAPI(t)

	sess := getSession(t, e)
	assert.False(t, sess.Online)
	assert.Equal(t, "Idle", sess.Phase)

	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/online", "").Code)

	sess = getSession(t, e)
	assert.True(t, sess.Online)

	// Going online twice conflicts.
	assert.Equal(t, http.StatusConflict, doRequest(t, e, http.MethodPost, "/api/v1/session/online", "").Code)

	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/orders/1/accept", "").Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/delivery/arrived", "").Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/delivery/picked-up", "").Code)

	sess = getSession(t, e)
	assert.Equal(t, "EnRouteToDestination", sess.Phase)
	require.NotNil(t, sess.CurrentOrderID)
	assert.Equal(t, 1, *sess.CurrentOrderID)

	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/delivery/completed", "").Code)

	sess = getSession(t, e)
	assert.True(t, sess.Online)
	assert.Equal(t, "Idle", sess.Phase)
	assert.Nil(t, sess.CurrentOrderID)
}

func TestServer_GetOrders(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []queries.GetAvailableOrdersQueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.NotEmpty(t, orders)
	assert.Equal(t, 1, orders[0].ID)
	assert.NotEmpty(t, orders[0].Vendor)
	assert.NotEmpty(t, orders[0].Fee)
}

func TestServer_SelectOrder(t *testing.T) {
	e := newTestAPI(t)
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/online", "").Code)

	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/orders/2/select", "").Code)
	sess := getSession(t, e)
	require.NotNil(t, sess.SelectedOrderID)
	assert.Equal(t, 2, *sess.SelectedOrderID)

	// Selecting the same order again clears the selection.
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/orders/2/select", "").Code)
	sess = getSession(t, e)
	assert.Nil(t, sess.SelectedOrderID)
}

func TestServer_ErrorMapping(t *testing.T) {
	e := newTestAPI(t)

	// Offline select conflicts.
	assert.Equal(t, http.StatusConflict, doRequest(t, e, http.MethodPost, "/api/v1/orders/1/select", "").Code)

	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/online", "").Code)

	// Unknown catalog id.
	assert.Equal(t, http.StatusNotFound, doRequest(t, e, http.MethodPost, "/api/v1/orders/99/accept", "").Code)

	// Malformed id.
	assert.Equal(t, http.StatusBadRequest, doRequest(t, e, http.MethodPost, "/api/v1/orders/abc/accept", "").Code)

	// Phase transitions out of order conflict.
	assert.Equal(t, http.StatusConflict, doRequest(t, e, http.MethodPost, "/api/v1/delivery/picked-up", "").Code)
}

func TestServer_GoOffline_ResetsMidDelivery(t *testing.T) {
	e := newTestAPI(t)
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/online", "").Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/orders/1/accept", "").Code)

	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/offline", "").Code)

	sess := getSession(t, e)
	assert.False(t, sess.Online)
	assert.Equal(t, "Idle", sess.Phase)
	assert.Nil(t, sess.CurrentOrderID)

	// Idempotent.
	assert.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/offline", "").Code)
}

func TestServer_GestureCommitBringsOperatorOnline(t *testing.T) {
	e := newTestAPI(t)

	body := `{"kind":"touch","pointerX":10,"trackLength":200}`
	rec := doRequest(t, e, http.MethodPost, "/api/v1/gesture/start", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var state httpin.GestureStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Dragging)

	// Below the commit threshold: still dragging, nothing committed.
	rec = doRequest(t, e, http.MethodPost, "/api/v1/gesture/move", `{"kind":"touch","pointerX":110}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Dragging)
	assert.InDelta(t, 100.0, state.Offset, 1e-9)
	assert.False(t, getSession(t, e).Online)

	// Crossing the threshold commits and ends the drag.
	rec = doRequest(t, e, http.MethodPost, "/api/v1/gesture/move", `{"kind":"touch","pointerX":205}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.False(t, state.Dragging)
	assert.Zero(t, state.Offset)
	assert.True(t, getSession(t, e).Online)
}

func TestServer_GestureReleaseBelowThresholdReverts(t *testing.T) {
	e := newTestAPI(t)

	require.Equal(t, http.StatusOK,
		doRequest(t, e, http.MethodPost, "/api/v1/gesture/start", `{"kind":"mouse","pointerX":0,"trackLength":200}`).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, e, http.MethodPost, "/api/v1/gesture/move", `{"kind":"mouse","pointerX":120}`).Code)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/gesture/end", `{"kind":"mouse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var state httpin.GestureStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.False(t, state.Dragging)
	assert.Zero(t, state.Offset)
	assert.False(t, getSession(t, e).Online)
}

func TestServer_GestureRejectsUnknownPointerKind(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/gesture/start", `{"kind":"pen","pointerX":0,"trackLength":200}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GestureRejectsNonPositiveTrackLength(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(t, e, http.MethodPost, "/api/v1/gesture/start", `{"kind":"touch","pointerX":0,"trackLength":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetMapView(t *testing.T) {
	e := newTestAPI(t)

	rec := doRequest(t, e, http.MethodGet, "/api/v1/map/view", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view httpin.MapViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Markers, 1)
	assert.Equal(t, "courier", view.Markers[0].Kind)
	assert.Equal(t, "centerOn", view.Camera.Kind)
	require.NotNil(t, view.Camera.Center)

	// Accepting an order switches the camera to fit-bounds over three points.
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/session/online", "").Code)
	require.Equal(t, http.StatusNoContent, doRequest(t, e, http.MethodPost, "/api/v1/orders/1/accept", "").Code)

	rec = doRequest(t, e, http.MethodGet, "/api/v1/map/view", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Markers, 3)
	assert.Equal(t, "fitBounds", view.Camera.Kind)
	assert.Len(t, view.Camera.Points, 3)

	labels := make([]string, 0, len(view.Markers))
	for _, m := range view.Markers {
		labels = append(labels, fmt.Sprintf("%s:%s", m.Kind, m.Label))
	}
	assert.ElementsMatch(t, []string{"courier:", "origin:A", "destination:B"}, labels)
}
