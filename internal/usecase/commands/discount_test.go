//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parkspace-booking/internal/domain/audit"
	"parkspace-booking/internal/domain/billing"
	"parkspace-booking/internal/infra"
	"parkspace-booking/internal/pkg/clock"
	"parkspace-booking/internal/pkg/errs"
	"parkspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDiscountUseCase(f *uowFixture) commands.DiscountCommands {
	return commands.NewDiscountUseCase(f.uow, clock.NewMockClock(fixedNow))
}

func TestDiscountUseCase_CreateDiscount(t *testing.T) {
	ctx := context.Background()
	valid := commands.DiscountInput{
		Code:  "welcome10",
		Type:  billing.DiscountPercent,
		Value: decimal.NewFromInt(10),
	}

	t.Run("success: stores the normalized code", func(t *testing.T) {
		f := newUOWFixture(t)
		f.discounts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *billing.Discount) error {
				assert.Equal(t, "WELCOME10", d.Code())
				assert.True(t, d.IsActive())
				return nil
			})
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Event) error {
				assert.Equal(t, audit.ActionDiscountCreated, e.Action)
				assert.Equal(t, "10.00", e.Metadata["value"])
				return nil
			})

		id, err := newDiscountUseCase(f).CreateDiscount(ctx, valid, audit.Origin{})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: invalid input never reaches storage", func(t *testing.T) {
		zero := 0
		testCases := []struct {
			name      string
			mutate    func(*commands.DiscountInput)
			expectErr error
		}{
			{name: "percent above 100", mutate: func(in *commands.DiscountInput) { in.Value = decimal.NewFromInt(101) }, expectErr: billing.ErrInvalidDiscountValue},
			{name: "zero value", mutate: func(in *commands.DiscountInput) { in.Value = decimal.Zero }, expectErr: billing.ErrInvalidDiscountValue},
			{name: "code with symbols", mutate: func(in *commands.DiscountInput) { in.Code = "WEL-COME" }, expectErr: billing.ErrInvalidDiscountCode},
			{name: "unknown type", mutate: func(in *commands.DiscountInput) { in.Type = "gift" }, expectErr: billing.ErrInvalidDiscountType},
			{name: "usage limit zero", mutate: func(in *commands.DiscountInput) { in.UsageLimit = &zero }, expectErr: billing.ErrInvalidUsageLimit},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newUOWFixture(t)
				in := valid
				tc.mutate(&in)

				_, err := newDiscountUseCase(f).CreateDiscount(ctx, in, audit.Origin{})

				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
			})
		}
	})

	t.Run("error: duplicate code", func(t *testing.T) {
		f := newUOWFixture(t)
		dup := infra.WrapRepoErr(discardLogger(), infra.KindDuplicateKey, "insert discount", &pgconn.PgError{Code: "23505"})
		f.discounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dup)

		_, err := newDiscountUseCase(f).CreateDiscount(ctx, valid, audit.Origin{})

		assert.True(t, errs.Is(err, billing.ErrDuplicateDiscountCode), "got %v", err)
	})
}

func TestDiscountUseCase_ToggleAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle: returns the new state", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.discounts.EXPECT().Toggle(gomock.Any(), id).Return(false, nil)
		f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		active, err := newDiscountUseCase(f).ToggleDiscount(ctx, id, audit.Origin{})

		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("toggle: unknown discount", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.discounts.EXPECT().Toggle(gomock.Any(), id).Return(false, notFound())

		_, err := newDiscountUseCase(f).ToggleDiscount(ctx, id, audit.Origin{})

		assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)
	})

	t.Run("delete: nothing deleted is not found", func(t *testing.T) {
		f := newUOWFixture(t)
		id := uuid.New()
		f.discounts.EXPECT().Delete(gomock.Any(), id).Return(int64(0), nil)

		err := newDiscountUseCase(f).DeleteDiscount(ctx, id, audit.Origin{})

		assert.True(t, errs.Is(err, billing.ErrDiscountNotFound), "got %v", err)
	})
}
