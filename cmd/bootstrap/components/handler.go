package components

import (
	"parkspace-booking/internal/handler"
	"parkspace-booking/internal/handler/api"
	"parkspace-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPublicHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewPricingHandler,
		api.NewDiscountHandler,
		api.NewBlackoutHandler,
		api.NewTemplateHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		handler.RegisterValidators,
		handler.NewRouter,
	),
)
