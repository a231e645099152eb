package shared

import (
	"context"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Discounts() DiscountRepository
	Invites() InviteRepository
	Audit() AuditRepository
	Notifications() NotificationRepository
	Catalog() CatalogRepository
	Pricing() PricingRepository
	Blackouts() BlackoutRepository
	Templates() TemplateRepository
	Reads() CommandReads
}

type CommandReads interface {
	PriceInputs
	LocationByID(ctx context.Context, id uuid.UUID) (*LocationSnapshot, error)
	CompanyByID(ctx context.Context, id uuid.UUID) (*CompanySnapshot, error)
	CountLocationsByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CountBookingsByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)
	DiscountByCode(ctx context.Context, code string) (*DiscountSnapshot, error)
	BlackoutsOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) ([]blackout.Blackout, error)
	ActiveTemplates(ctx context.Context, locationID uuid.UUID, companyID *uuid.UUID) ([]TemplateSnapshot, error)
	TemplateByID(ctx context.Context, id uuid.UUID) (*TemplateSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error)
	BookingByIdempotencyKey(ctx context.Context, key string) (*booking.Snapshot, error)
	InviteByToken(ctx context.Context, token string) (*invite.Token, error)
}

// PriceInputs is everything price resolution reads from storage.
type PriceInputs interface {
	VehicleTypeByID(ctx context.Context, id uuid.UUID) (*catalog.VehicleType, error)
	PriceCandidates(ctx context.Context, target pricing.Target) (*PriceCandidates, error)
	// BasePrice returns nil when the setting has never been written.
	BasePrice(ctx context.Context) (*decimal.Decimal, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// RecordCustomerSignature moves pending_customer_signature to pending_owner_signature.
	RecordCustomerSignature(ctx context.Context, id uuid.UUID, slot booking.SignatureSlot) (int64, error)
	// CompleteOwnerSignature moves pending_owner_signature to completed.
	CompleteOwnerSignature(ctx context.Context, id uuid.UUID, slot booking.SignatureSlot) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, d *billing.Discount) error
	// IncrementUsage bumps usage_count only while it stays within usage_limit.
	IncrementUsage(ctx context.Context, id uuid.UUID) (int64, error)
	Toggle(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type InviteRepository interface {
	Create(ctx context.Context, t *invite.Token) error
	// Consume marks an unused, unexpired token as used by bookingID.
	Consume(ctx context.Context, token string, bookingID uuid.UUID, now time.Time) (int64, error)
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type AuditRepository interface {
	Append(ctx context.Context, e audit.Event) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	// ClaimDue leases queued jobs whose run_at has passed by moving run_at to leaseUntil
	// and counting the attempt. Rows locked by a concurrent claimer are skipped.
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	// MarkFailed requeues the job at retryAt, or fails it for good when retryAt is nil.
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt *time.Time) error
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type CatalogRepository interface {
	CreateCompany(ctx context.Context, c *catalog.Company) error
	UpdateCompany(ctx context.Context, c *catalog.Company) (int64, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) (int64, error)
	CreateLocation(ctx context.Context, l *catalog.Location) error
	UpdateLocation(ctx context.Context, l *catalog.Location) (int64, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) (int64, error)
}

type PricingRepository interface {
	CreateRule(ctx context.Context, r *pricing.Rule) error
	DeleteRule(ctx context.Context, id uuid.UUID) (int64, error)
	CreateOverride(ctx context.Context, o *pricing.Override) error
	DeleteOverride(ctx context.Context, id uuid.UUID) (int64, error)
	SetBasePrice(ctx context.Context, value decimal.Decimal) error
}

type BlackoutRepository interface {
	Create(ctx context.Context, b *blackout.Blackout) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, t *contract.Template) error
	// MaxVersion locks the rows of name and returns their highest version, 0 if none.
	MaxVersion(ctx context.Context, name string) (int, error)
	// Activate deactivates the other templates of the same scope, then activates id.
	Activate(ctx context.Context, id uuid.UUID, scopeType contract.ScopeType, scopeID *uuid.UUID) error
}
