package components

import (
	"log/slog"

	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/infra/readstore"
	"parkspace-booking/internal/infra/uow"
	"parkspace-booking/internal/usecase/queries"
	"parkspace-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Write repositories are built per transaction by the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Pricing
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		// Discount
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
		// Blackout
		fx.Annotate(
			readstore.NewBlackoutReadStore,
			fx.As(new(queries.BlackoutReadStore)),
		),
		// Template
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Invite
		fx.Annotate(
			readstore.NewInviteReadStore,
			fx.As(new(queries.InviteReadStore)),
		),
		// Audit
		fx.Annotate(
			readstore.NewAuditReadStore,
			fx.As(new(queries.AuditReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
		NewCommandReads,
		func(reads shared.CommandReads) shared.PriceInputs { return reads },
		func(reads shared.CommandReads) queries.ContractReads { return reads },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, logger)
}

// NewCommandReads exposes the pool-backed snapshot reads outside a transaction.
func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
