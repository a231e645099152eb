//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/catalog"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/commands"
	"parkspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogUseCase(f *uowFixture) commands.CatalogCommands {
	return commands.NewCatalogUseCase(f.uow, clock.NewMockClock(fixedNow))
}

func strPtr(s string) *string { return &s }

func TestCatalogUseCase_CreateCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("success: trims name and audits", func(t *testing.T) {
		f := newUOWFixture(t)
		f.catalog.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *catalog.Company) error {
				assert.Equal(t, "Parkhaus GmbH", c.Name())
				return nil
			})
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				assert.Equal(t, audit.ActionCompanyCreated, e.Action)
				assert.Equal(t, audit.ActorAdmin, e.Actor)
				return nil
			})

		id, err := newCatalogUseCase(f).CreateCompany(ctx, commands.CompanyInput{Name: "  Parkhaus GmbH "}, audit.Origin{})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: duplicate name", func(t *testing.T) {
		f := newUOWFixture(t)
		dup := infra.WrapRepoErr(discardLogger(), infra.KindDuplicateKey, "insert company", &pgconn.PgError{Code: "23505"})
		f.catalog.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).Return(dup)

		_, err := newCatalogUseCase(f).CreateCompany(ctx, commands.CompanyInput{Name: "Parkhaus GmbH"}, audit.Origin{})

		assert.True(t, errs.Is(err, catalog.ErrDuplicateCompany), "got %v", err)
	})

	t.Run("error: name too short never reaches storage", func(t *testing.T) {
		f := newUOWFixture(t)

		_, err := newCatalogUseCase(f).CreateCompany(ctx, commands.CompanyInput{Name: "P"}, audit.Origin{})

		assert.True(t, errs.Is(err, catalog.ErrInvalidName), "got %v", err)
	})
}

func TestCatalogUseCase_UpdateCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("success: nil fields keep stored values, empty string clears", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.reads.EXPECT().CompanyByID(gomock.Any(), id).Return(&shared.CompanySnapshot{
			ID:    id,
			Name:  "Parkhaus GmbH",
			City:  strPtr("Berlin"),
			Phone: strPtr("030 123"),
		}, nil)
		f.catalog.EXPECT().UpdateCompany(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *catalog.Company) (int64, error) {
				assert.Equal(t, "Parkhaus GmbH", c.Name())
				require.NotNil(t, c.City())
				assert.Equal(t, "Berlin", *c.City())
				assert.Nil(t, c.Phone())
				return 1, nil
			})
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := newCatalogUseCase(f).UpdateCompany(ctx, id, commands.CompanyUpdate{Phone: strPtr("")}, audit.Origin{})

		require.NoError(t, err)
	})

	t.Run("error: unknown company", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.reads.EXPECT().CompanyByID(gomock.Any(), id).Return(nil, notFound())

		err := newCatalogUseCase(f).UpdateCompany(ctx, id, commands.CompanyUpdate{}, audit.Origin{})

		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})
}

func TestCatalogUseCase_DeleteCompany(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		locations int64
		force     bool
		expectErr error
	}{
		{name: "no locations: deletes", locations: 0},
		{name: "has locations without force: refused", locations: 2, expectErr: errs.ErrHasDependents},
		{name: "has locations with force: cascades", locations: 2, force: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUOWFixture(t)
			id := uuid.New()
			f.reads.EXPECT().CompanyByID(gomock.Any(), id).Return(&shared.CompanySnapshot{ID: id, Name: "Parkhaus GmbH"}, nil)
			f.reads.EXPECT().CountLocationsByCompany(gomock.Any(), id).Return(tc.locations, nil)
			if tc.expectErr == nil {
				f.catalog.EXPECT().DeleteCompany(gomock.Any(), id).Return(int64(1), nil)
				f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e audit.Event) error {
						assert.Equal(t, tc.force, e.Metadata["force"])
						assert.Equal(t, tc.locations, e.Metadata["deleted_locations"])
						return nil
					})
			}

			err := newCatalogUseCase(f).DeleteCompany(ctx, id, tc.force, audit.Origin{})

			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
				assert.True(t, errs.Is(err, catalog.ErrCompanyHasLocations))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCatalogUseCase_Location(t *testing.T) {
	ctx := context.Background()

	t.Run("create: unknown company is rejected", func(t *testing.T) {
		f := newUOWFixture(t)
		companyID := uuid.New()
		f.reads.EXPECT().CompanyByID(gomock.Any(), companyID).Return(nil, notFound())

		_, err := newCatalogUseCase(f).CreateLocation(ctx, commands.LocationInput{
			Name:      "Halle Nord",
			Address:   "Industriestraße 5, 12345 Berlin",
			Category:  catalog.CategoryIndoor,
			CompanyID: &companyID,
		}, audit.Origin{})

		assert.True(t, errs.Is(err, catalog.ErrCompanyNotFound), "got %v", err)
	})

	t.Run("create: invalid category", func(t *testing.T) {
		f := newUOWFixture(t)

		_, err := newCatalogUseCase(f).CreateLocation(ctx, commands.LocationInput{
			Name:     "Halle Nord",
			Address:  "Industriestraße 5, 12345 Berlin",
			Category: catalog.Category("garage"),
		}, audit.Origin{})

		assert.True(t, errs.Is(err, catalog.ErrInvalidCategory), "got %v", err)
	})

	t.Run("update: uuid.Nil detaches the company", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.reads.EXPECT().LocationByID(gomock.Any(), id).Return(&shared.LocationSnapshot{
			ID:       id,
			Name:     "Halle Nord",
			Address:  "Industriestraße 5, 12345 Berlin",
			Category: catalog.CategoryIndoor,
			Company:  &shared.CompanySnapshot{ID: uuid.New(), Name: "Parkhaus GmbH"},
		}, nil)
		f.catalog.EXPECT().UpdateLocation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *catalog.Location) (int64, error) {
				assert.Nil(t, l.CompanyID())
				return 1, nil
			})
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		nilID := uuid.Nil
		err := newCatalogUseCase(f).UpdateLocation(ctx, id, commands.LocationUpdate{CompanyID: &nilID}, audit.Origin{})

		require.NoError(t, err)
	})

	t.Run("delete: bookings block deletion without force", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.reads.EXPECT().LocationByID(gomock.Any(), id).Return(&shared.LocationSnapshot{ID: id, Name: "Halle Nord"}, nil)
		f.reads.EXPECT().CountBookingsByLocation(gomock.Any(), id).Return(int64(3), nil)

		err := newCatalogUseCase(f).DeleteLocation(ctx, id, false, audit.Origin{})

		assert.True(t, errs.Is(err, catalog.ErrLocationHasBookings), "got %v", err)
	})
}
