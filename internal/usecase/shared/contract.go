package shared

import (
	"context"

	"parkspace-booking/internal/domain/booking"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/domain/contract"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/caldate"

	"github.com/google/uuid"
)

type ContractSources interface {
	LocationByID(ctx context.Context, id uuid.UUID) (*LocationSnapshot, error)
	VehicleTypeByID(ctx context.Context, id uuid.UUID) (*catalog.VehicleType, error)
	TemplateByID(ctx context.Context, id uuid.UUID) (*TemplateSnapshot, error)
}

type RenderedContract struct {
	BookingID       uuid.UUID
	TemplateID      uuid.UUID
	TemplateVersion int
	TermsHash       string
	Body            string
}

// RenderContract renders the template version bound to b. The stored terms hash is
// returned as is; it is never recomputed.
func RenderContract(ctx context.Context, src ContractSources, b *booking.Snapshot) (*RenderedContract, error) {
	tpl, err := src.TemplateByID(ctx, b.Contract.TemplateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, contract.ErrTemplateNotFound
		}
		return nil, err
	}

	loc, err := src.LocationByID(ctx, b.LocationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrLocationNotFound
		}
		return nil, err
	}

	vt, err := src.VehicleTypeByID(ctx, b.VehicleTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrInvalidVehicleType
		}
		return nil, err
	}

	in := contract.RenderInput{
		Company: loc.Company.ContractInfo(),
		Customer: contract.CustomerInfo{
			FirstName: b.Customer.FirstName,
			LastName:  b.Customer.LastName,
			Address:   b.Customer.Address,
			Email:     b.Customer.Email,
		},
		LocationAddress: loc.Address,
		Category:        b.Category,
		VehicleLabel:    vt.Label,
		VehicleLength:   vt.MaxLength,
		AccessCode:      loc.AccessCode,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		Monthly:         b.MonthlyPrice,
		ProRata:         b.ProrataAmount,
		DiscountCode:    b.DiscountCode,
		DiscountAmount:  b.DiscountAmount,
		Caution:         b.Caution,
		ContractDate:    caldate.Of(b.CreatedAt),
	}
	if b.CustomerSign != nil {
		in.CustomerSignature = &b.CustomerSign.SVG
	}
	if b.OwnerSign != nil {
		in.OwnerSignature = &b.OwnerSign.SVG
	}

	return &RenderedContract{
		BookingID:       b.ID,
		TemplateID:      tpl.ID,
		TemplateVersion: b.Contract.TemplateVersion,
		TermsHash:       b.Contract.TermsHash,
		Body:            contract.Render(tpl.Body, contract.BuildData(in)),
	}, nil
}
