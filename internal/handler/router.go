package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"parkspace-booking/internal/handler/api"
	"parkspace-booking/internal/handler/middleware"
	"parkspace-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers is filled by fx from the api constructors.
type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Public   *api.PublicHandler
	Booking  *api.BookingHandler
	Catalog  *api.CatalogHandler
	Pricing  *api.PricingHandler
	Discount *api.DiscountHandler
	Blackout *api.BlackoutHandler
	Template *api.TemplateHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/locations", Handler: h.Public.ListLocations},
			{Method: http.MethodGet, Path: "/vehicle-types", Handler: h.Public.ListVehicleTypes},
			{Method: http.MethodGet, Path: "/pricing/resolve", Handler: h.Public.ResolvePrice},
			{Method: http.MethodGet, Path: "/pricing/:locationId", Handler: h.Public.PriceTable},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Public.Availability},
			{Method: http.MethodGet, Path: "/invite/:token", Handler: h.Public.GetInvite},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking},
			{Method: http.MethodPost, Path: "/bookings/:id/sign-customer", Handler: h.Booking.SignCustomer},
			{Method: http.MethodGet, Path: "/bookings/:id/contract", Handler: h.Booking.Contract},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			protected := admin.Group("")
			protected.Use(authMiddleware.RequireAdmin())
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Booking.Dashboard},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/export", Handler: h.Booking.ExportBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/sign-owner", Handler: h.Booking.SignOwner},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.DeleteBooking},

				{Method: http.MethodGet, Path: "/companies", Handler: h.Catalog.ListCompanies},
				{Method: http.MethodPost, Path: "/companies", Handler: h.Catalog.CreateCompany},
				{Method: http.MethodGet, Path: "/companies/:id", Handler: h.Catalog.GetCompany},
				{Method: http.MethodPut, Path: "/companies/:id", Handler: h.Catalog.UpdateCompany},
				{Method: http.MethodDelete, Path: "/companies/:id", Handler: h.Catalog.DeleteCompany},

				{Method: http.MethodGet, Path: "/locations", Handler: h.Catalog.ListLocations},
				{Method: http.MethodPost, Path: "/locations", Handler: h.Catalog.CreateLocation},
				{Method: http.MethodGet, Path: "/locations/:id", Handler: h.Catalog.GetLocation},
				{Method: http.MethodPut, Path: "/locations/:id", Handler: h.Catalog.UpdateLocation},
				{Method: http.MethodDelete, Path: "/locations/:id", Handler: h.Catalog.DeleteLocation},

				{Method: http.MethodGet, Path: "/pricing/config", Handler: h.Pricing.Config},
				{Method: http.MethodPut, Path: "/pricing/config", Handler: h.Pricing.SetBasePrice},
				{Method: http.MethodGet, Path: "/pricing/rules", Handler: h.Pricing.ListRules},
				{Method: http.MethodPost, Path: "/pricing/rules", Handler: h.Pricing.CreateRule},
				{Method: http.MethodDelete, Path: "/pricing/rules/:id", Handler: h.Pricing.DeleteRule},
				{Method: http.MethodGet, Path: "/pricing/overrides", Handler: h.Pricing.ListOverrides},
				{Method: http.MethodPost, Path: "/pricing/overrides", Handler: h.Pricing.CreateOverride},
				{Method: http.MethodDelete, Path: "/pricing/overrides/:id", Handler: h.Pricing.DeleteOverride},

				{Method: http.MethodGet, Path: "/discounts", Handler: h.Discount.ListDiscounts},
				{Method: http.MethodPost, Path: "/discounts", Handler: h.Discount.CreateDiscount},
				{Method: http.MethodPatch, Path: "/discounts/:id/toggle", Handler: h.Discount.ToggleDiscount},
				{Method: http.MethodDelete, Path: "/discounts/:id", Handler: h.Discount.DeleteDiscount},

				{Method: http.MethodGet, Path: "/blackouts", Handler: h.Blackout.ListBlackouts},
				{Method: http.MethodPost, Path: "/blackouts", Handler: h.Blackout.CreateBlackout},
				{Method: http.MethodDelete, Path: "/blackouts/:id", Handler: h.Blackout.DeleteBlackout},

				{Method: http.MethodGet, Path: "/templates", Handler: h.Template.ListTemplates},
				{Method: http.MethodPost, Path: "/templates", Handler: h.Template.CreateTemplate},
				{Method: http.MethodPost, Path: "/templates/:id/activate", Handler: h.Template.ActivateTemplate},

				{Method: http.MethodPost, Path: "/invites", Handler: h.Admin.CreateInvite},
				{Method: http.MethodGet, Path: "/audit-log", Handler: h.Admin.AuditLog},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
