package components

import (
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/config"
	"parkspace-booking/internal/usecase"
	"parkspace-booking/internal/usecase/commands"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(cfg.DB.Location())
	},
	fx.Annotate(
		pricing.NewLayeredResolver,
		fx.As(new(pricing.Resolver)),
	),
	shared.NewPricingSettings,
	shared.NewNotifySettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewCatalogUseCase,
		commands.NewPricingUseCase,
		commands.NewDiscountUseCase,
		commands.NewBlackoutUseCase,
		commands.NewTemplateUseCase,
		commands.NewInviteUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewPricingQueries,
		queries.NewAvailabilityQueries,
		queries.NewDiscountQueries,
		queries.NewTemplateQueries,
		queries.NewBookingQueries,
		queries.NewExportQueries,
		queries.NewInviteQueries,
		queries.NewAuditQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
