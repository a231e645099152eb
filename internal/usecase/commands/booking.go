package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/blackout"
	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/domain/invite"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/domain/signature"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingInput struct {
	LocationID        uuid.UUID
	VehicleTypeID     uuid.UUID
	Category          catalog.Category
	Customer          booking.Customer
	StartDate         time.Time
	EndDate           time.Time
	DiscountCode      string
	DepositMultiplier *decimal.Decimal
	BillingCycle      string
	NoticePeriodDays  *int
	SignatureImage    string
	SignatureSVG      string
	InviteToken       *string
	IdempotencyKey    *string
	Origin            audit.Origin
}

type CreateBookingResult struct {
	BookingID        uuid.UUID
	Replayed         bool
	DiscountRejected bool
}

type SignInput struct {
	BookingID      uuid.UUID
	SignatureImage string
	SignatureSVG   string
	Origin         audit.Origin
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	SignCustomer(ctx context.Context, in SignInput) error
	SignOwner(ctx context.Context, in SignInput) error
	DeleteBooking(ctx context.Context, id uuid.UUID, origin audit.Origin) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver pricing.Resolver
	pricing  shared.PricingSettings
	notify   shared.NotifySettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	resolver pricing.Resolver,
	pricingSettings shared.PricingSettings,
	notifySettings shared.NotifySettings,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		pricing:  pricingSettings,
		notify:   notifySettings,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	requestHash := calculateRequestHash(in)
	reads := uc.uow.CommandReads()

	if in.IdempotencyKey != nil {
		replayed, err := uc.replay(ctx, reads, *in.IdempotencyKey, requestHash)
		if err != nil || replayed != nil {
			return replayed, err
		}
	}

	if err := signature.Validate(in.SignatureSVG); err != nil {
		return nil, err
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, booking.ErrInvalidDateRange
	}

	blackouts, err := reads.BlackoutsOverlapping(ctx, in.LocationID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if conflicts := blackout.Conflicts(blackouts, in.StartDate, in.EndDate); len(conflicts) > 0 {
		return nil, blackout.NewConflictError(conflicts)
	}

	loc, err := uc.loadLocation(ctx, reads, in.LocationID, in.Category)
	if err != nil {
		return nil, err
	}

	target := pricing.Target{LocationID: loc.ID, VehicleTypeID: in.VehicleTypeID, Category: loc.Category}
	quote, _, err := shared.QuotePrice(ctx, reads, uc.resolver, uc.pricing, target, in.StartDate)
	if err != nil {
		return nil, err
	}

	discount, err := uc.findDiscount(ctx, reads, in.DiscountCode)
	if err != nil {
		return nil, err
	}

	multiplier := billing.DefaultDepositMultiplier
	if in.DepositMultiplier != nil {
		multiplier = *in.DepositMultiplier
	}
	if err := billing.ValidateDepositMultiplier(multiplier); err != nil {
		return nil, err
	}

	breakdown := billing.Compute(billing.BreakdownInput{
		Monthly:           quote.Price,
		StartDate:         in.StartDate,
		LocationID:        loc.ID,
		DiscountCode:      in.DiscountCode,
		Discount:          discount,
		DepositMultiplier: multiplier,
	})

	var companyID *uuid.UUID
	if loc.Company != nil {
		id := loc.Company.ID
		companyID = &id
	}
	tpl, err := uc.selectTemplate(ctx, reads, loc.ID, companyID)
	if err != nil {
		return nil, err
	}

	cycle, err := booking.ParseBillingCycle(in.BillingCycle)
	if err != nil {
		return nil, err
	}
	notice := booking.DefaultNoticePeriodDays
	if in.NoticePeriodDays != nil {
		notice = *in.NoticePeriodDays
	}

	now := uc.clock.Now()
	b, err := booking.New(booking.Params{
		LocationID:    loc.ID,
		VehicleTypeID: in.VehicleTypeID,
		Category:      loc.Category,
		CompanyID:     companyID,
		Customer:      in.Customer,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		PriceSource:   quote.Source,
		Billing:       breakdown,
		Terms:         booking.Terms{BillingCycle: cycle, NoticePeriodDays: notice},
		Contract: booking.Contract{
			TemplateID:      tpl.ID(),
			TemplateVersion: tpl.Version(),
			TermsHash:       contract.TermsHash(tpl.Body(), tpl.Version(), companyID, loc.ID),
		},
		CustomerSign: booking.SignatureSlot{
			Image:     in.SignatureImage,
			SVG:       in.SignatureSVG,
			IP:        in.Origin.IP,
			UserAgent: in.Origin.UserAgent,
		},
		IdempotencyKey: in.IdempotencyKey,
		RequestHash:    &requestHash,
		InviteToken:    in.InviteToken,
	}, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		if id := breakdown.DiscountID; id != nil {
			affected, err := tx.Discounts().IncrementUsage(ctx, *id)
			if err != nil {
				return err
			}
			if affected == 0 {
				return billing.ErrDiscountExhausted
			}
		}

		if in.InviteToken != nil {
			affected, err := tx.Invites().Consume(ctx, *in.InviteToken, b.ID(), now)
			if err != nil {
				return err
			}
			if affected == 0 {
				return invite.ErrInvalidInvite
			}
		}

		id := b.ID()
		event := audit.NewEvent(audit.ActorCustomer, audit.ActionBookingCreated, audit.EntityBooking, &id, map[string]any{
			"location_id":  loc.ID,
			"total_amount": b.TotalAmount().StringFixed(2),
		}, in.Origin, now)
		if err := tx.Audit().Append(ctx, event); err != nil {
			return err
		}

		return uc.enqueueCreated(ctx, tx, b, loc, now)
	})
	if err != nil {
		if in.IdempotencyKey != nil && infra.IsKind(err, infra.KindDuplicateKey) {
			// a concurrent request with the same key won the insert
			replayed, rerr := uc.replay(ctx, reads, *in.IdempotencyKey, requestHash)
			if rerr != nil {
				return nil, rerr
			}
			if replayed != nil {
				return replayed, nil
			}
		}
		return nil, err
	}

	uc.logger.Info("booking created",
		"booking_id", b.ID().String(),
		"location_id", loc.ID.String(),
		"price_source", string(quote.Source),
		"discount_rejected", breakdown.DiscountRejected)

	return &CreateBookingResult{
		BookingID:        b.ID(),
		DiscountRejected: breakdown.DiscountRejected,
	}, nil
}

func (uc *bookingUseCaseImpl) SignCustomer(ctx context.Context, in SignInput) error {
	if err := signature.Validate(in.SignatureSVG); err != nil {
		return err
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), in.BookingID)
		if err != nil {
			return err
		}

		if err := b.SignCustomer(signatureSlot(in), now); err != nil {
			return err
		}

		affected, err := tx.Bookings().RecordCustomerSignature(ctx, b.ID(), *b.CustomerSignature())
		if err != nil {
			return err
		}
		if affected == 0 {
			return booking.ErrInvalidTransition
		}

		id := b.ID()
		event := audit.NewEvent(audit.ActorCustomer, audit.ActionCustomerSigned, audit.EntityBooking, &id, nil, in.Origin, now)
		return tx.Audit().Append(ctx, event)
	})
}

func (uc *bookingUseCaseImpl) SignOwner(ctx context.Context, in SignInput) error {
	if err := signature.Validate(in.SignatureSVG); err != nil {
		return err
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), in.BookingID)
		if err != nil {
			return err
		}

		if err := b.SignOwner(signatureSlot(in), now); err != nil {
			return err
		}

		affected, err := tx.Bookings().CompleteOwnerSignature(ctx, b.ID(), *b.OwnerSignature())
		if err != nil {
			return err
		}
		if affected == 0 {
			// another owner signature committed between our read and the update
			return booking.ErrAlreadyCompleted
		}

		id := b.ID()
		event := audit.NewEvent(audit.ActorAdmin, audit.ActionOwnerSigned, audit.EntityBooking, &id, nil, in.Origin, now)
		if err := tx.Audit().Append(ctx, event); err != nil {
			return err
		}

		snapshot := b.Snapshot()
		rendered, err := shared.RenderContract(ctx, tx.Reads(), &snapshot)
		if err != nil {
			return err
		}
		return uc.enqueueCompleted(ctx, tx, b, rendered, now)
	})
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID, origin audit.Origin) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadBooking(ctx, tx.Reads(), id)
		if err != nil {
			return err
		}

		affected, err := tx.Bookings().Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return booking.ErrBookingNotFound
		}

		event := audit.NewEvent(audit.ActorAdmin, audit.ActionBookingDeleted, audit.EntityBooking, &id, map[string]any{
			"customer": b.Customer().FirstName + " " + b.Customer().LastName,
			"status":   b.Status().String(),
		}, origin, now)
		return tx.Audit().Append(ctx, event)
	})
}

// replay returns the booking stored under key, or nil when the key is unused.
func (uc *bookingUseCaseImpl) replay(ctx context.Context, reads shared.CommandReads, key, requestHash string) (*CreateBookingResult, error) {
	existing, err := reads.BookingByIdempotencyKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if existing.RequestHash != nil && *existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	uc.logger.Info("idempotent booking replayed", "booking_id", existing.ID.String())
	return &CreateBookingResult{BookingID: existing.ID, Replayed: true}, nil
}

func (uc *bookingUseCaseImpl) loadLocation(ctx context.Context, reads shared.CommandReads, id uuid.UUID, category catalog.Category) (*shared.LocationSnapshot, error) {
	loc, err := reads.LocationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrLocationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// the location fixes the category; an empty request category takes it over
	if category != "" && category != loc.Category {
		return nil, catalog.ErrInvalidCategory
	}
	return loc, nil
}

func (uc *bookingUseCaseImpl) findDiscount(ctx context.Context, reads shared.CommandReads, code string) (*billing.Discount, error) {
	code = billing.NormalizeCode(code)
	if code == "" {
		return nil, nil
	}

	snap, err := reads.DiscountByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap.ToDomain(), nil
}

func (uc *bookingUseCaseImpl) selectTemplate(ctx context.Context, reads shared.CommandReads, locationID uuid.UUID, companyID *uuid.UUID) (*contract.Template, error) {
	snaps, err := reads.ActiveTemplates(ctx, locationID, companyID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	candidates := make([]*contract.Template, 0, len(snaps))
	for i := range snaps {
		candidates = append(candidates, snaps[i].ToDomain())
	}
	return contract.SelectActive(candidates, locationID, companyID)
}

func loadBooking(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*booking.Booking, error) {
	snap, err := reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return booking.Reconstruct(*snap), nil
}

func signatureSlot(in SignInput) booking.SignatureSlot {
	return booking.SignatureSlot{
		Image:     in.SignatureImage,
		SVG:       in.SignatureSVG,
		IP:        in.Origin.IP,
		UserAgent: in.Origin.UserAgent,
	}
}

// calculateRequestHash fingerprints the payload an idempotency key is bound to.
func calculateRequestHash(in CreateBookingInput) string {
	in.IdempotencyKey = nil
	in.Origin = audit.Origin{}
	in.DiscountCode = billing.NormalizeCode(in.DiscountCode)
	if cycle, err := booking.ParseBillingCycle(in.BillingCycle); err == nil {
		in.BillingCycle = string(cycle)
	}
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
