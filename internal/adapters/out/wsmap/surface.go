// Package wsmap pushes map rendering commands to browser widgets over
// websockets. Each connected widget receives the full marker set and camera
// command on every render, so a widget that connects mid-session catches up
// on the next refresh.
package wsmap

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// Event names understood by the map widget.
const (
	EventSetMarkers     = "set_markers"
	EventFitBounds      = "fit_bounds"
	EventCenterOn       = "center_on"
	EventInvalidateSize = "invalidate_size"
)

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Surface broadcasts rendering commands to every connected map widget.
// It implements the core's map surface port; Ready reports false while no
// widget is connected, which makes the core skip renders instead of failing.
type Surface struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*wsConn]struct{}
}

// NewSurface creates a surface with no connected widgets.
func NewSurface(log *zap.Logger) *Surface {
	return &Surface{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		clients: make(map[*wsConn]struct{}),
	}
}

// HandleUpgrade upgrades an HTTP request to a websocket connection and
// registers it as a map widget. The connection stays registered until the
// peer closes it or a write fails.
func (s *Surface) HandleUpgrade(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &wsConn{conn: conn}
	s.register(client)
	s.log.Info("map widget connected", zap.String("remote", conn.RemoteAddr().String()))

	// Widgets never send data; the read loop only detects disconnects.
	go s.readUntilClosed(client)

	return nil
}

func (s *Surface) register(client *wsConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client] = struct{}{}
}

func (s *Surface) unregister(client *wsConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[client]; ok {
		client.conn.Close()
		delete(s.clients, client)
	}
}

func (s *Surface) readUntilClosed(client *wsConn) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			s.unregister(client)
			s.log.Info("map widget disconnected")
			return
		}
	}
}

// Ready reports whether at least one widget is connected.
func (s *Surface) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients) > 0
}

// SetMarkers broadcasts the full replacement marker set.
func (s *Surface) SetMarkers(_ context.Context, markers []services.Marker) error {
	payload := make([]markerPayload, 0, len(markers))
	for _, m := range markers {
		payload = append(payload, markerPayload{
			Kind:    m.Kind.String(),
			Label:   m.Label,
			Address: m.Point.Address(),
			Lat:     m.Point.Lat(),
			Lng:     m.Point.Lng(),
		})
	}
	return s.broadcast(EventSetMarkers, setMarkersPayload{Markers: payload})
}

// FitBounds broadcasts a fit-bounds camera command.
func (s *Surface) FitBounds(_ context.Context, points []kernel.GeoPoint, padding int, animate bool) error {
	payload := fitBoundsPayload{
		Points:  make([]pointPayload, 0, len(points)),
		Padding: padding,
		Animate: animate,
	}
	for _, p := range points {
		payload.Points = append(payload.Points, pointPayload{Lat: p.Lat(), Lng: p.Lng()})
	}
	return s.broadcast(EventFitBounds, payload)
}

// CenterOn broadcasts a center-on camera command.
func (s *Surface) CenterOn(_ context.Context, point kernel.GeoPoint, zoom int, animate bool) error {
	return s.broadcast(EventCenterOn, centerOnPayload{
		Point:   pointPayload{Lat: point.Lat(), Lng: point.Lng()},
		Zoom:    zoom,
		Animate: animate,
	})
}

// InvalidateSize tells every widget to reconcile its size with its container.
func (s *Surface) InvalidateSize(_ context.Context) error {
	return s.broadcast(EventInvalidateSize, struct{}{})
}

// broadcast sends a typed event to every connected widget. Clients whose
// write fails are dropped; the remaining clients still receive the event.
func (s *Surface) broadcast(event string, payload any) error {
	s.mu.RLock()
	clients := make([]*wsConn, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for _, client := range clients {
		client.mu.Lock()
		err := client.conn.WriteJSON(msg)
		client.mu.Unlock()
		if err != nil {
			s.log.Warn("map widget write failed, dropping client",
				zap.String("event", event), zap.Error(err))
			s.unregister(client)
		}
	}
	return nil
}

type markerPayload struct {
	Kind    string  `json:"kind"`
	Label   string  `json:"label,omitempty"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type setMarkersPayload struct {
	Markers []markerPayload `json:"markers"`
}

type pointPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type fitBoundsPayload struct {
	Points  []pointPayload `json:"points"`
	Padding int            `json:"padding"`
	Animate bool           `json:"animate"`
}

type centerOnPayload struct {
	Point   pointPayload `json:"point"`
	Zoom    int          `json:"zoom"`
	Animate bool         `json:"animate"`
}
