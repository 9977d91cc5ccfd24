package cmd

import (
	"context"

	"go.uber.org/zap"

	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/catalog"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/wsmap"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/gesture"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"
)

type CompositionRoot struct {
	log             *zap.Logger
	sessionStore    *memory.SessionStore
	orderCatalog    *catalog.StaticCatalog
	mapSurface      *wsmap.Surface
	courierPosition kernel.GeoPoint
	refreshHandler  *commands.RefreshMapCommandHandler
	viewBuilder     services.MapViewBuilder
}

func NewCompositionRoot(config Config, log *zap.Logger) (*CompositionRoot, error) {
	orders, err := catalog.DefaultOrders()
	if err != nil {
		return nil, err
	}
	orderCatalog, err := catalog.NewStaticCatalog(orders)
	if err != nil {
		return nil, err
	}

	courierPosition, err := kernel.NewGeoPoint(config.CourierAddress, config.CourierLat, config.CourierLng)
	if err != nil {
		return nil, err
	}

	viewBuilder, err := services.NewMapViewBuilder(config.MapFitPadding, config.MapCenterZoom)
	if err != nil {
		return nil, err
	}

	sessionStore := memory.NewSessionStore()
	mapSurface := wsmap.NewSurface(log)

	refreshHandler := commands.NewRefreshMapCommandHandler(
		sessionStore, mapSurface, viewBuilder, courierPosition, log,
	)

	return &CompositionRoot{
		log:             log,
		sessionStore:    sessionStore,
		orderCatalog:    orderCatalog,
		mapSurface:      mapSurface,
		courierPosition: courierPosition,
		refreshHandler:  &refreshHandler,
		viewBuilder:     viewBuilder,
	}, nil
}

// MapSurface exposes the websocket surface so main can mount its upgrade route.
func (c *CompositionRoot) MapSurface() *wsmap.Surface {
	return c.mapSurface
}

func (c *CompositionRoot) mapRefresher() commands.MapRefresher {
	return commands.FuncMapRefresher(func(ctx context.Context) error {
		return c.refreshHandler.Refresh(ctx)
	})
}

func (c *CompositionRoot) CreateGoOnlineCommandHandler() commands.GoOnlineCommandHandler {
	return commands.NewGoOnlineCommandHandler(c.sessionStore, c.mapRefresher())
}

func (c *CompositionRoot) CreateGoOfflineCommandHandler() commands.GoOfflineCommandHandler {
	return commands.NewGoOfflineCommandHandler(c.sessionStore, c.mapRefresher())
}

func (c *CompositionRoot) CreateSelectOrderCommandHandler() commands.SelectOrderCommandHandler {
	return commands.NewSelectOrderCommandHandler(c.sessionStore, c.orderCatalog, c.mapRefresher())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.sessionStore, c.orderCatalog, c.mapRefresher())
}

func (c *CompositionRoot) CreateMarkArrivedCommandHandler() commands.MarkArrivedCommandHandler {
	return commands.NewMarkArrivedCommandHandler(c.sessionStore, c.mapRefresher())
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.sessionStore, c.mapRefresher())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.sessionStore, c.mapRefresher())
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.orderCatalog)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateGetMapViewQueryHandler() queries.GetMapViewQueryHandler {
	return queries.NewGetMapViewQueryHandler(c.sessionStore, c.viewBuilder, c.courierPosition)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.mapSurface, c.log)
}

// CreateHTTPServer builds the API server together with the slide-to-go-online
// recognizer. The recognizer's commit is wired to the go-online handler, so a
// completed slide is the gesture-driven path onto shift.
func (c *CompositionRoot) CreateHTTPServer() (*http.Server, error) {
	goOnlineHandler := c.CreateGoOnlineCommandHandler()

	recognizer, err := gesture.NewRecognizer(func() {
		if commitErr := goOnlineHandler.Handle(context.Background(), commands.NewGoOnlineCommand()); commitErr != nil {
			c.log.Warn("gesture commit rejected", zap.Error(commitErr))
		}
	})
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		goOnlineHandler,
		c.CreateGoOfflineCommandHandler(),
		c.CreateSelectOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateMarkArrivedCommandHandler(),
		c.CreateMarkPickedUpCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetSessionQueryHandler(),
		c.CreateGetMapViewQueryHandler(),
		recognizer,
	), nil
}
