//go:build unit || e2e

package builder

import (
	"parkspace-booking/internal/domain/billing"
	reqdto "parkspace-booking/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	Code       string
	Type       billing.DiscountType
	Value      decimal.Decimal
	ValidFrom  *string
	ValidTo    *string
	LocationID *uuid.UUID
	UsageLimit *int
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		Code:  "welcome10",
		Type:  billing.DiscountPercent,
		Value: decimal.NewFromInt(10),
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) WithUsageLimit(limit int) *DiscountBuilder {
	b.UsageLimit = &limit
	return b
}

func (b *DiscountBuilder) BuildCreateRequest() reqdto.CreateDiscountRequest {
	value := b.Value
	return reqdto.CreateDiscountRequest{
		Code:         b.Code,
		DiscountType: string(b.Type),
		Value:        &value,
		ValidFrom:    b.ValidFrom,
		ValidTo:      b.ValidTo,
		LocationID:   b.LocationID,
		UsageLimit:   b.UsageLimit,
	}
}
