package shared

import (
	"time"

	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type LocationSnapshot struct {
	ID         uuid.UUID
	Name       string
	Address    string
	Category   catalog.Category
	AccessCode *string
	Company    *CompanySnapshot
}

type CompanySnapshot struct {
	ID          uuid.UUID
	Name        string
	Street      *string
	HouseNumber *string
	PostalCode  *string
	City        *string
	Email       *string
	Phone       *string
}

func (c *CompanySnapshot) ContractInfo() *contract.CompanyInfo {
	if c == nil {
		return nil
	}
	return &contract.CompanyInfo{
		Name:        c.Name,
		Street:      c.Street,
		HouseNumber: c.HouseNumber,
		PostalCode:  c.PostalCode,
		City:        c.City,
		Email:       c.Email,
	}
}

type PriceCandidates struct {
	Rules     []pricing.Rule
	Overrides []pricing.Override
	Legacy    *decimal.Decimal
}

type DiscountSnapshot struct {
	ID         uuid.UUID
	Code       string
	Type       billing.DiscountType
	Value      decimal.Decimal
	ValidFrom  *time.Time
	ValidTo    *time.Time
	LocationID *uuid.UUID
	UsageLimit *int
	UsageCount int
	IsActive   bool
	CreatedAt  time.Time
}

func (s *DiscountSnapshot) ToDomain() *billing.Discount {
	return billing.ReconstructDiscount(
		s.ID,
		s.Code,
		s.Type,
		s.Value,
		pricing.ValidityWindow{From: s.ValidFrom, To: s.ValidTo},
		s.LocationID,
		s.UsageLimit,
		s.UsageCount,
		s.IsActive,
		s.CreatedAt,
	)
}

type TemplateSnapshot struct {
	ID        uuid.UUID
	Name      string
	ScopeType contract.ScopeType
	ScopeID   *uuid.UUID
	Body      string
	Version   int
	IsActive  bool
	CreatedAt time.Time
}

func (s *TemplateSnapshot) ToDomain() *contract.Template {
	return contract.ReconstructTemplate(s.ID, s.Name, s.ScopeType, s.ScopeID, s.Body, s.Version, s.IsActive, s.CreatedAt)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}
