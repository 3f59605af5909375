package queries

import (
	"context"

	"github.com/google/uuid"
)

// ReferralSummary is the single payload the referrals page needs: the
// user's share code plus everyone they brought in and the rewards earned.
type ReferralSummary struct {
	ReferralCode string          `json:"referral_code"`
	Referrals    []*ReferralView `json:"referrals"`
	Rewards      []*RewardView   `json:"rewards"`
}

type ReferralQueries interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*ReferralSummary, error)
	ListRewards(ctx context.Context, userID uuid.UUID) ([]*RewardView, error)
}

type ReferralReadStore interface {
	FindReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*ReferralView, error)
	FindRewardsByUser(ctx context.Context, userID uuid.UUID) ([]*RewardView, error)
	FindReferralCode(ctx context.Context, userID uuid.UUID) (string, error)
}

type referralQueriesImpl struct {
	readStore ReferralReadStore
}

func NewReferralQueries(readStore ReferralReadStore) ReferralQueries {
	return &referralQueriesImpl{readStore: readStore}
}

func (q *referralQueriesImpl) GetSummary(ctx context.Context, userID uuid.UUID) (*ReferralSummary, error) {
	code, err := q.readStore.FindReferralCode(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := q.readStore.FindReferralsByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	rewards, err := q.readStore.FindRewardsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ReferralSummary{
		ReferralCode: code,
		Referrals:    referrals,
		Rewards:      rewards,
	}, nil
}

func (q *referralQueriesImpl) ListRewards(ctx context.Context, userID uuid.UUID) ([]*RewardView, error) {
	return q.readStore.FindRewardsByUser(ctx, userID)
}
