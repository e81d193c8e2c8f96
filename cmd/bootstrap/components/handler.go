package components

import (
	"kartly-api/internal/handler"
	"kartly-api/internal/handler/api"
	"kartly-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewOrderHandler,
		api.NewPointsHandler,
		api.NewAdminOrderHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	order *api.OrderHandler,
	points *api.PointsHandler,
	admin *api.AdminOrderHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Catalog: catalog,
		Order:   order,
		Points:  points,
		Admin:   admin,
	}
}
