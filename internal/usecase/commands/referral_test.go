//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"aquaflow/internal/domain/referral"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemCode(t *testing.T) {
	ctx := context.Background()

	t.Run("grants the referrer a reward", func(t *testing.T) {
		uow := newFakeUoW()
		clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
		uc := commands.NewReferralUseCase(uow, clk)

		referrer := registerTestUser(t, uow, clk, "referrer@example.com")
		redeemer := registerTestUser(t, uow, clk, "redeemer@example.com")

		result, err := uc.RedeemCode(ctx, redeemer.ID(), referrer.ReferralCode())
		require.NoError(t, err)

		assert.Equal(t, referrer.ID(), result.Referral.ReferrerID())
		assert.Equal(t, redeemer.ID(), result.Referral.ReferredID())
		assert.Equal(t, referrer.ID(), result.Reward.UserID())
		assert.Equal(t, referral.RewardDiscountJOD, result.Reward.DiscountAmount())
		assert.True(t, result.Reward.ExpiresAt().Equal(clk.Now().AddDate(0, 0, referral.RewardValidityDays)))
	})

	t.Run("unknown code", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewReferralUseCase(uow, clock.NewMockClock(time.Now()))

		_, err := uc.RedeemCode(ctx, uuid.New(), "NOSUCHCD")
		assert.ErrorIs(t, err, commands.ErrReferralCodeNotFound)
	})

	t.Run("own code is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clk := clock.NewMockClock(time.Now())
		uc := commands.NewReferralUseCase(uow, clk)

		u := registerTestUser(t, uow, clk, "selfref@example.com")

		_, err := uc.RedeemCode(ctx, u.ID(), u.ReferralCode())
		assert.ErrorIs(t, err, referral.ErrSelfReferral)
		assert.Empty(t, uow.rewards)
	})

	t.Run("second redemption is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clk := clock.NewMockClock(time.Now())
		uc := commands.NewReferralUseCase(uow, clk)

		first := registerTestUser(t, uow, clk, "first@example.com")
		second := registerTestUser(t, uow, clk, "second@example.com")
		redeemer := registerTestUser(t, uow, clk, "greedy@example.com")

		_, err := uc.RedeemCode(ctx, redeemer.ID(), first.ReferralCode())
		require.NoError(t, err)

		_, err = uc.RedeemCode(ctx, redeemer.ID(), second.ReferralCode())
		assert.ErrorIs(t, err, commands.ErrAlreadyReferred)
		assert.Len(t, uow.rewards, 1)
	})
}
