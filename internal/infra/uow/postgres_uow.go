package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/infra/db"
	"parkspace-booking/internal/infra/readstore"
	"parkspace-booking/internal/infra/repository"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	baseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Serialization failures and deadlocks rerun fn from scratch.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool, u.logger)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:   pgxTx,
			logger: u.logger,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errs.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt) {
			if isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, baseBackoff)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx   db.DBTX
	logger *slog.Logger

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	discountRepo     shared.DiscountRepository
	inviteRepo       shared.InviteRepository
	auditRepo        shared.AuditRepository
	notificationRepo shared.NotificationRepository
	catalogRepo      shared.CatalogRepository
	pricingRepo      shared.PricingRepository
	blackoutRepo     shared.BlackoutRepository
	templateRepo     shared.TemplateRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx, t.logger)
	}
	return t.bookingRepo
}

func (t *pgTx) Discounts() shared.DiscountRepository {
	if t.discountRepo == nil {
		t.discountRepo = repository.NewDiscountRepository(t.dbtx, t.logger)
	}
	return t.discountRepo
}

func (t *pgTx) Invites() shared.InviteRepository {
	if t.inviteRepo == nil {
		t.inviteRepo = repository.NewInviteRepository(t.dbtx, t.logger)
	}
	return t.inviteRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository(t.dbtx, t.logger)
	}
	return t.auditRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx, t.logger)
	}
	return t.notificationRepo
}

func (t *pgTx) Catalog() shared.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.dbtx, t.logger)
	}
	return t.catalogRepo
}

func (t *pgTx) Pricing() shared.PricingRepository {
	if t.pricingRepo == nil {
		t.pricingRepo = repository.NewPricingRepository(t.dbtx, t.logger)
	}
	return t.pricingRepo
}

func (t *pgTx) Blackouts() shared.BlackoutRepository {
	if t.blackoutRepo == nil {
		t.blackoutRepo = repository.NewBlackoutRepository(t.dbtx, t.logger)
	}
	return t.blackoutRepo
}

func (t *pgTx) Templates() shared.TemplateRepository {
	if t.templateRepo == nil {
		t.templateRepo = repository.NewTemplateRepository(t.dbtx, t.logger)
	}
	return t.templateRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx, t.logger)
	}
	return t.commandReads
}

// commandReads serves the write side; inside a transaction it reads through
// the same connection so row locks taken earlier are visible.
type commandReads struct {
	catalog   *readstore.CatalogReadStore
	pricing   *readstore.PricingReadStore
	discounts *readstore.DiscountReadStore
	blackouts *readstore.BlackoutReadStore
	templates *readstore.TemplateReadStore
	bookings  *readstore.BookingReadStore
	invites   *readstore.InviteReadStore
}

func newCommandReads(dbtx db.DBTX, logger *slog.Logger) *commandReads {
	return &commandReads{
		catalog:   readstore.NewCatalogReadStore(dbtx, logger),
		pricing:   readstore.NewPricingReadStore(dbtx, logger),
		discounts: readstore.NewDiscountReadStore(dbtx, logger),
		blackouts: readstore.NewBlackoutReadStore(dbtx, logger),
		templates: readstore.NewTemplateReadStore(dbtx, logger),
		bookings:  readstore.NewBookingReadStore(dbtx, logger),
		invites:   readstore.NewInviteReadStore(dbtx, logger),
	}
}

func (r *commandReads) VehicleTypeByID(ctx context.Context, id uuid.UUID) (*catalog.VehicleType, error) {
	return r.catalog.VehicleTypeByID(ctx, id)
}

func (r *commandReads) PriceCandidates(ctx context.Context, target pricing.Target) (*shared.PriceCandidates, error) {
	return r.pricing.PriceCandidates(ctx, target)
}

func (r *commandReads) BasePrice(ctx context.Context) (*decimal.Decimal, error) {
	return r.pricing.BasePrice(ctx)
}

func (r *commandReads) LocationByID(ctx context.Context, id uuid.UUID) (*shared.LocationSnapshot, error) {
	return r.catalog.LocationSnapshot(ctx, id)
}

func (r *commandReads) CompanyByID(ctx context.Context, id uuid.UUID) (*shared.CompanySnapshot, error) {
	return r.catalog.CompanySnapshot(ctx, id)
}

func (r *commandReads) CountLocationsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return r.catalog.CountLocationsByCompany(ctx, companyID)
}

func (r *commandReads) CountBookingsByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	return r.catalog.CountBookingsByLocation(ctx, locationID)
}

func (r *commandReads) DiscountByCode(ctx context.Context, code string) (*shared.DiscountSnapshot, error) {
	return r.discounts.FindByCode(ctx, code)
}

func (r *commandReads) BlackoutsOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) ([]blackout.Blackout, error) {
	return r.blackouts.Overlapping(ctx, locationID, start, end)
}

func (r *commandReads) ActiveTemplates(ctx context.Context, locationID uuid.UUID, companyID *uuid.UUID) ([]shared.TemplateSnapshot, error) {
	return r.templates.ActiveTemplates(ctx, locationID, companyID)
}

func (r *commandReads) TemplateByID(ctx context.Context, id uuid.UUID) (*shared.TemplateSnapshot, error) {
	return r.templates.FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error) {
	return r.bookings.SnapshotByID(ctx, id)
}

func (r *commandReads) BookingByIdempotencyKey(ctx context.Context, key string) (*booking.Snapshot, error) {
	return r.bookings.SnapshotByIdempotencyKey(ctx, key)
}

func (r *commandReads) InviteByToken(ctx context.Context, token string) (*invite.Token, error) {
	return r.invites.TokenByValue(ctx, token)
}
