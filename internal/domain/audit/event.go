// Package audit describes the structured events every state change emits.
package audit

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionBookingCreated     Action = "booking_created"
	ActionCustomerSigned     Action = "customer_signed"
	ActionOwnerSigned        Action = "owner_signed"
	ActionBookingDeleted     Action = "booking_deleted"
	ActionBasePriceUpdated   Action = "base_price_updated"
	ActionPricingRuleCreated Action = "pricing_rule_created"
	ActionPricingRuleDeleted Action = "pricing_rule_deleted"
	ActionOverrideCreated    Action = "pricing_override_created"
	ActionOverrideDeleted    Action = "pricing_override_deleted"
	ActionDiscountCreated    Action = "discount_created"
	ActionDiscountToggled    Action = "discount_toggled"
	ActionDiscountDeleted    Action = "discount_deleted"
	ActionBlackoutCreated    Action = "blackout_created"
	ActionBlackoutDeleted    Action = "blackout_deleted"
	ActionTemplateCreated    Action = "template_created"
	ActionTemplateActivated  Action = "template_activated"
	ActionCompanyCreated     Action = "company_created"
	ActionCompanyUpdated     Action = "company_updated"
	ActionCompanyDeleted     Action = "company_deleted"
	ActionLocationCreated    Action = "location_created"
	ActionLocationUpdated    Action = "location_updated"
	ActionLocationDeleted    Action = "location_deleted"
	ActionInviteCreated      Action = "invite_created"
	ActionAdminLogin         Action = "admin_login"
	ActionBookingsExported   Action = "bookings_exported"
)

const (
	ActorAdmin    = "admin"
	ActorCustomer = "customer"
)

const (
	EntityBooking     = "booking"
	EntitySetting     = "setting"
	EntityPricingRule = "pricing_rule"
	EntityOverride    = "pricing_override"
	EntityDiscount    = "discount"
	EntityBlackout    = "blackout"
	EntityTemplate    = "contract_template"
	EntityCompany     = "company"
	EntityLocation    = "location"
	EntityInvite      = "invite_token"
	EntitySession     = "session"
)

// Origin is where a request came from; it is copied onto every event.
type Origin struct {
	IP        string
	UserAgent string
}

type Event struct {
	ID         uuid.UUID
	Actor      string
	Action     Action
	EntityType string
	EntityID   *uuid.UUID
	Metadata   map[string]any
	IPAddress  *string
	UserAgent  *string
	CreatedAt  time.Time
}

func NewEvent(actor string, action Action, entityType string, entityID *uuid.UUID, metadata map[string]any, origin Origin, now time.Time) Event {
	e := Event{
		ID:         uuid.New(),
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		CreatedAt:  now,
	}
	if origin.IP != "" {
		ip := origin.IP
		e.IPAddress = &ip
	}
	if origin.UserAgent != "" {
		ua := origin.UserAgent
		e.UserAgent = &ua
	}
	return e
}
