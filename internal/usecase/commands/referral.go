package commands

import (
	"context"

	"aquaflow/internal/domain/referral"
	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAlreadyReferred = errs.New("user was already referred")

type RedeemReferralResult struct {
	Referral *referral.Referral
	Reward   *referral.Reward
}

type ReferralCommands interface {
	// RedeemCode redeems another user's referral code on behalf of
	// userID and grants the referrer the standard reward. A user can be
	// referred at most once, whether at registration or here.
	RedeemCode(ctx context.Context, userID uuid.UUID, code string) (*RedeemReferralResult, error)
}

type referralUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReferralUseCase(uow shared.UnitOfWork, clk clock.Clock) ReferralCommands {
	return &referralUseCaseImpl{uow: uow, clock: clk}
}

func (uc *referralUseCaseImpl) RedeemCode(ctx context.Context, userID uuid.UUID, code string) (*RedeemReferralResult, error) {
	var result RedeemReferralResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		referrer, derr := tx.Reads().UserByReferralCode(ctx, code)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReferralCodeNotFound
			}
			return derr
		}

		exists, derr := tx.Referrals().ExistsForReferred(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrAlreadyReferred
		}

		ref, derr := referral.NewReferral(referrer.ID(), userID, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if _, derr = tx.Referrals().CreateReferral(ctx, tx.DB(), ref); derr != nil {
			return derr
		}

		reward := referral.NewReward(referrer.ID(), ref.ID(), uc.clock.Now())
		if _, derr = tx.Referrals().CreateReward(ctx, tx.DB(), reward); derr != nil {
			return derr
		}

		result.Referral = ref
		result.Reward = reward
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
