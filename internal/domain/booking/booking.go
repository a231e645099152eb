package booking

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/pricing"
	"parkspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	FirstName string
	LastName  string
	Address   string
	Email     string
}

func (c Customer) Validate() error {
	if n := utf8.RuneCountInString(c.FirstName); n < 2 || n > 100 {
		return errs.Wrap(ErrInvalidCustomer, "first name must be 2-100 characters")
	}
	if n := utf8.RuneCountInString(c.LastName); n < 2 || n > 100 {
		return errs.Wrap(ErrInvalidCustomer, "last name must be 2-100 characters")
	}
	if n := utf8.RuneCountInString(c.Address); n < 5 || n > 500 {
		return errs.Wrap(ErrInvalidCustomer, "address must be 5-500 characters")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errs.Wrap(ErrInvalidCustomer, "invalid email")
	}
	return nil
}

// Contract is the template binding frozen at creation.
type Contract struct {
	TemplateID      uuid.UUID
	TemplateVersion int
	TermsHash       string
}

type Terms struct {
	BillingCycle     BillingCycle
	NoticePeriodDays int
}

// Params holds everything resolved before a booking can be created.
type Params struct {
	LocationID     uuid.UUID
	VehicleTypeID  uuid.UUID
	Category       catalog.Category
	CompanyID      *uuid.UUID
	Customer       Customer
	StartDate      time.Time
	EndDate        time.Time
	PriceSource    pricing.Source
	Billing        billing.Breakdown
	Terms          Terms
	Contract       Contract
	CustomerSign   SignatureSlot
	IdempotencyKey *string
	RequestHash    *string
	InviteToken    *string
}

type Booking struct {
	id                uuid.UUID
	locationID        uuid.UUID
	vehicleTypeID     uuid.UUID
	category          catalog.Category
	companyID         *uuid.UUID
	customer          Customer
	startDate         time.Time
	endDate           time.Time
	priceSource       pricing.Source
	monthlyPrice      decimal.Decimal
	prorataAmount     *decimal.Decimal
	discountID        *uuid.UUID
	discountCode      *string
	discountAmount    decimal.Decimal
	depositMultiplier decimal.Decimal
	caution           decimal.Decimal
	totalAmount       decimal.Decimal
	terms             Terms
	contract          Contract
	status            Status
	customerSign      *SignatureSlot
	ownerSign         *SignatureSlot
	idempotencyKey    *string
	requestHash       *string
	inviteToken       *string
	createdAt         time.Time
	updatedAt         time.Time
}

// New creates a booking whose customer has signed on submission, so it starts
// waiting for the owner.
func New(p Params, now time.Time) (*Booking, error) {
	b, err := newBooking(p, now)
	if err != nil {
		return nil, err
	}
	sign := p.CustomerSign
	sign.SignedAt = now
	b.customerSign = &sign
	b.status = StatusPendingOwnerSignature
	return b, nil
}

// NewUnsigned creates a booking for the legacy flow where the customer signs later.
func NewUnsigned(p Params, now time.Time) (*Booking, error) {
	b, err := newBooking(p, now)
	if err != nil {
		return nil, err
	}
	b.status = StatusPendingCustomerSignature
	return b, nil
}

func newBooking(p Params, now time.Time) (*Booking, error) {
	p.Customer.FirstName = strings.TrimSpace(p.Customer.FirstName)
	p.Customer.LastName = strings.TrimSpace(p.Customer.LastName)
	p.Customer.Address = strings.TrimSpace(p.Customer.Address)
	p.Customer.Email = strings.TrimSpace(p.Customer.Email)
	if err := p.Customer.Validate(); err != nil {
		return nil, err
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if !p.Category.IsValid() {
		return nil, catalog.ErrInvalidCategory
	}
	if p.Terms.BillingCycle == "" {
		p.Terms.BillingCycle = BillingMonthly
	}
	if _, err := ParseBillingCycle(string(p.Terms.BillingCycle)); err != nil {
		return nil, err
	}
	if p.Terms.NoticePeriodDays < 0 || p.Terms.NoticePeriodDays > MaxNoticePeriodDays {
		return nil, ErrInvalidNoticePeriod
	}
	if err := billing.ValidateDepositMultiplier(p.Billing.DepositMultiplier); err != nil {
		return nil, err
	}

	return &Booking{
		id:                uuid.New(),
		locationID:        p.LocationID,
		vehicleTypeID:     p.VehicleTypeID,
		category:          p.Category,
		companyID:         p.CompanyID,
		customer:          p.Customer,
		startDate:         p.StartDate,
		endDate:           p.EndDate,
		priceSource:       p.PriceSource,
		monthlyPrice:      p.Billing.Monthly,
		prorataAmount:     p.Billing.ProRata,
		discountID:        p.Billing.DiscountID,
		discountCode:      p.Billing.DiscountCode,
		discountAmount:    p.Billing.DiscountAmount,
		depositMultiplier: p.Billing.DepositMultiplier,
		caution:           p.Billing.Deposit,
		totalAmount:       p.Billing.Total,
		terms:             p.Terms,
		contract:          p.Contract,
		idempotencyKey:    p.IdempotencyKey,
		requestHash:       p.RequestHash,
		inviteToken:       p.InviteToken,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// Snapshot is the persisted shape of a booking, used to rebuild the aggregate.
type Snapshot struct {
	ID                uuid.UUID
	LocationID        uuid.UUID
	VehicleTypeID     uuid.UUID
	Category          catalog.Category
	CompanyID         *uuid.UUID
	Customer          Customer
	StartDate         time.Time
	EndDate           time.Time
	PriceSource       pricing.Source
	MonthlyPrice      decimal.Decimal
	ProrataAmount     *decimal.Decimal
	DiscountID        *uuid.UUID
	DiscountCode      *string
	DiscountAmount    decimal.Decimal
	DepositMultiplier decimal.Decimal
	Caution           decimal.Decimal
	TotalAmount       decimal.Decimal
	Terms             Terms
	Contract          Contract
	Status            Status
	CustomerSign      *SignatureSlot
	OwnerSign         *SignatureSlot
	IdempotencyKey    *string
	RequestHash       *string
	InviteToken       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:                s.ID,
		locationID:        s.LocationID,
		vehicleTypeID:     s.VehicleTypeID,
		category:          s.Category,
		companyID:         s.CompanyID,
		customer:          s.Customer,
		startDate:         s.StartDate,
		endDate:           s.EndDate,
		priceSource:       s.PriceSource,
		monthlyPrice:      s.MonthlyPrice,
		prorataAmount:     s.ProrataAmount,
		discountID:        s.DiscountID,
		discountCode:      s.DiscountCode,
		discountAmount:    s.DiscountAmount,
		depositMultiplier: s.DepositMultiplier,
		caution:           s.Caution,
		totalAmount:       s.TotalAmount,
		terms:             s.Terms,
		contract:          s.Contract,
		status:            s.Status,
		customerSign:      s.CustomerSign,
		ownerSign:         s.OwnerSign,
		idempotencyKey:    s.IdempotencyKey,
		requestHash:       s.RequestHash,
		inviteToken:       s.InviteToken,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:                b.id,
		LocationID:        b.locationID,
		VehicleTypeID:     b.vehicleTypeID,
		Category:          b.category,
		CompanyID:         b.companyID,
		Customer:          b.customer,
		StartDate:         b.startDate,
		EndDate:           b.endDate,
		PriceSource:       b.priceSource,
		MonthlyPrice:      b.monthlyPrice,
		ProrataAmount:     b.prorataAmount,
		DiscountID:        b.discountID,
		DiscountCode:      b.discountCode,
		DiscountAmount:    b.discountAmount,
		DepositMultiplier: b.depositMultiplier,
		Caution:           b.caution,
		TotalAmount:       b.totalAmount,
		Terms:             b.terms,
		Contract:          b.contract,
		Status:            b.status,
		CustomerSign:      b.customerSign,
		OwnerSign:         b.ownerSign,
		IdempotencyKey:    b.idempotencyKey,
		RequestHash:       b.requestHash,
		InviteToken:       b.inviteToken,
		CreatedAt:         b.createdAt,
		UpdatedAt:         b.updatedAt,
	}
}

// SignCustomer records the customer signature on a legacy booking.
func (b *Booking) SignCustomer(slot SignatureSlot, now time.Time) error {
	if err := b.status.Transition(StatusPendingOwnerSignature); err != nil {
		return err
	}
	slot.SignedAt = now
	b.customerSign = &slot
	b.status = StatusPendingOwnerSignature
	b.updatedAt = now
	return nil
}

// SignOwner records the owner signature and completes the booking.
func (b *Booking) SignOwner(slot SignatureSlot, now time.Time) error {
	if err := b.status.Transition(StatusCompleted); err != nil {
		return err
	}
	slot.SignedAt = now
	b.ownerSign = &slot
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID                      { return b.id }
func (b *Booking) LocationID() uuid.UUID              { return b.locationID }
func (b *Booking) VehicleTypeID() uuid.UUID           { return b.vehicleTypeID }
func (b *Booking) Category() catalog.Category         { return b.category }
func (b *Booking) CompanyID() *uuid.UUID              { return b.companyID }
func (b *Booking) Customer() Customer                 { return b.customer }
func (b *Booking) StartDate() time.Time               { return b.startDate }
func (b *Booking) EndDate() time.Time                 { return b.endDate }
func (b *Booking) PriceSource() pricing.Source        { return b.priceSource }
func (b *Booking) MonthlyPrice() decimal.Decimal      { return b.monthlyPrice }
func (b *Booking) ProrataAmount() *decimal.Decimal    { return b.prorataAmount }
func (b *Booking) DiscountID() *uuid.UUID             { return b.discountID }
func (b *Booking) DiscountCode() *string              { return b.discountCode }
func (b *Booking) DiscountAmount() decimal.Decimal    { return b.discountAmount }
func (b *Booking) DepositMultiplier() decimal.Decimal { return b.depositMultiplier }
func (b *Booking) Caution() decimal.Decimal           { return b.caution }
func (b *Booking) TotalAmount() decimal.Decimal       { return b.totalAmount }
func (b *Booking) Terms() Terms                       { return b.terms }
func (b *Booking) Contract() Contract                 { return b.contract }
func (b *Booking) Status() Status                     { return b.status }
func (b *Booking) CustomerSignature() *SignatureSlot  { return b.customerSign }
func (b *Booking) OwnerSignature() *SignatureSlot     { return b.ownerSign }
func (b *Booking) IdempotencyKey() *string            { return b.idempotencyKey }
func (b *Booking) RequestHash() *string               { return b.requestHash }
func (b *Booking) InviteToken() *string               { return b.inviteToken }
func (b *Booking) CreatedAt() time.Time               { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time               { return b.updatedAt }
