package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LocationView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Category    string     `json:"category"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	CompanyName *string    `json:"company_name,omitempty"`
	AccessCode  *string    `json:"access_code,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CompanyView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Street        *string   `json:"street,omitempty"`
	HouseNumber   *string   `json:"house_number,omitempty"`
	PostalCode    *string   `json:"postal_code,omitempty"`
	City          *string   `json:"city,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	LocationCount int64     `json:"location_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type VehicleTypeView struct {
	ID        uuid.UUID       `json:"id"`
	MaxLength decimal.Decimal `json:"max_length"`
	Label     string          `json:"label"`
}

type PriceQuoteView struct {
	LocationID    uuid.UUID       `json:"location_id"`
	VehicleTypeID uuid.UUID       `json:"vehicle_type_id"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Price         decimal.Decimal `json:"price"`
	Source        string          `json:"source"`
	SourceID      *uuid.UUID      `json:"source_id,omitempty"`
}

type PriceTableEntry struct {
	VehicleTypeID uuid.UUID       `json:"vehicle_type_id"`
	VehicleLabel  string          `json:"vehicle_label"`
	MaxLength     decimal.Decimal `json:"max_length"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Source        string          `json:"source"`
}

// FormulaRow holds the formula price per category for one vehicle type.
type FormulaRow struct {
	VehicleTypeID uuid.UUID                  `json:"vehicle_type_id"`
	VehicleLabel  string                     `json:"vehicle_label"`
	MaxLength     decimal.Decimal            `json:"max_length"`
	Prices        map[string]decimal.Decimal `json:"prices"`
}

type PricingConfigView struct {
	BasePrice        decimal.Decimal            `json:"base_price"`
	FormulaEnabled   bool                       `json:"formula_enabled"`
	CategoryFactors  map[string]decimal.Decimal `json:"category_factors"`
	LengthThreshold  decimal.Decimal            `json:"length_threshold"`
	LengthStep       decimal.Decimal            `json:"length_step"`
	SurchargePerStep decimal.Decimal            `json:"surcharge_per_step"`
	PriceTable       []FormulaRow               `json:"price_table"`
}

type PricingRuleView struct {
	ID            uuid.UUID       `json:"id"`
	LocationID    uuid.UUID       `json:"location_id"`
	LocationName  string          `json:"location_name"`
	VehicleTypeID uuid.UUID       `json:"vehicle_type_id"`
	VehicleLabel  string          `json:"vehicle_label"`
	Category      string          `json:"category"`
	BasePrice     decimal.Decimal `json:"base_price"`
	ValidFrom     *string         `json:"valid_from,omitempty"`
	ValidTo       *string         `json:"valid_to,omitempty"`
	Priority      int             `json:"priority"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PricingOverrideView struct {
	ID            uuid.UUID       `json:"id"`
	LocationID    uuid.UUID       `json:"location_id"`
	LocationName  string          `json:"location_name"`
	VehicleTypeID uuid.UUID       `json:"vehicle_type_id"`
	VehicleLabel  string          `json:"vehicle_label"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"override_price"`
	ValidFrom     string          `json:"valid_from"`
	ValidTo       string          `json:"valid_to"`
	Reason        *string         `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type DiscountView struct {
	ID           uuid.UUID       `json:"id"`
	Code         string          `json:"code"`
	Type         string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	ValidFrom    *string         `json:"valid_from,omitempty"`
	ValidTo      *string         `json:"valid_to,omitempty"`
	LocationID   *uuid.UUID      `json:"location_id,omitempty"`
	LocationName *string         `json:"location_name,omitempty"`
	UsageLimit   *int            `json:"usage_limit,omitempty"`
	UsageCount   int             `json:"usage_count"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BlackoutView struct {
	ID           uuid.UUID `json:"id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Reason       *string   `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// BlockedRange is the public view of a blackout; the reason stays internal.
type BlockedRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AvailabilityView struct {
	Available bool           `json:"available"`
	Blackouts []BlockedRange `json:"blackouts"`
}

type TemplateView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ScopeType string     `json:"scope_type"`
	ScopeID   *uuid.UUID `json:"scope_id,omitempty"`
	Body      string     `json:"body_md"`
	Version   int        `json:"version"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

type BookingListItem struct {
	ID           uuid.UUID       `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	LocationID   uuid.UUID       `json:"location_id"`
	LocationName string          `json:"location_name"`
	VehicleLabel string          `json:"vehicle_label"`
	Category     string          `json:"category"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Caution      decimal.Decimal `json:"caution"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type BookingView struct {
	BookingListItem
	VehicleTypeID         uuid.UUID        `json:"vehicle_type_id"`
	CompanyID             *uuid.UUID       `json:"company_id,omitempty"`
	PriceSource           string           `json:"price_source"`
	ProrataAmount         *decimal.Decimal `json:"prorata_amount,omitempty"`
	DiscountCode          *string          `json:"discount_code,omitempty"`
	DiscountAmount        decimal.Decimal  `json:"discount_amount"`
	DepositMultiplier     decimal.Decimal  `json:"deposit_multiplier"`
	BillingCycle          string           `json:"billing_cycle"`
	NoticePeriodDays      int              `json:"notice_period_days"`
	TemplateID            uuid.UUID        `json:"template_id"`
	TemplateVersion       int              `json:"template_version"`
	TermsHash             string           `json:"terms_hash"`
	CustomerSignatureDate *time.Time       `json:"customer_signature_date,omitempty"`
	OwnerSignatureDate    *time.Time       `json:"owner_signature_date,omitempty"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// BookingFilter narrows the admin list; From and To bound start_date and end_date.
type BookingFilter struct {
	Status     *string
	LocationID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

type DashboardStats struct {
	TotalBookings            int64 `json:"total_bookings"`
	PendingCustomerSignature int64 `json:"pending_customer_signature"`
	PendingOwnerSignature    int64 `json:"pending_owner_signature"`
	Completed                int64 `json:"completed"`
	Last30Days               int64 `json:"last_30_days"`
}

type DashboardView struct {
	Stats          DashboardStats     `json:"stats"`
	RecentBookings []*BookingListItem `json:"recent_bookings"`
}

type ContractView struct {
	BookingID       uuid.UUID `json:"booking_id"`
	TemplateID      uuid.UUID `json:"template_id"`
	TemplateVersion int       `json:"template_version"`
	TermsHash       string    `json:"terms_hash"`
	Body            string    `json:"body_md"`
}

type AuditEventView struct {
	ID         uuid.UUID      `json:"id"`
	Actor      string         `json:"actor"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IPAddress  *string        `json:"ip_address,omitempty"`
	UserAgent  *string        `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type AuditPage struct {
	Items  []*AuditEventView `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type InviteView struct {
	Token         string     `json:"token"`
	LocationID    *uuid.UUID `json:"location_id,omitempty"`
	LocationName  *string    `json:"location_name,omitempty"`
	VehicleTypeID *uuid.UUID `json:"vehicle_type_id,omitempty"`
	Category      *string    `json:"category,omitempty"`
	PrefillEmail  *string    `json:"prefill_email,omitempty"`
	ExpiresAt     time.Time  `json:"expires_at"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
}
