package repository

import (
	"context"

	"aquaflow/internal/domain/referral"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReferralRepository struct{}

func NewReferralRepository() *ReferralRepository {
	return &ReferralRepository{}
}

func (r *ReferralRepository) CreateReferral(ctx context.Context, ex db.Executor, ref *referral.Referral) (uuid.UUID, error) {
	const query = `
		INSERT INTO referrals (id, referrer_id, referred_id, status, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		ref.ID(), ref.ReferrerID(), ref.ReferredID(), string(ref.Status()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("referral already recorded", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("referral user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create referral", err)
	}
	return id, nil
}

func (r *ReferralRepository) CreateReward(ctx context.Context, ex db.Executor, rew *referral.Reward) (uuid.UUID, error) {
	const query = `
		INSERT INTO rewards (id, user_id, referral_id, discount_amount, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		rew.ID(), rew.UserID(), rew.ReferralID(), rew.DiscountAmount(),
		string(rew.Status()), rew.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reward user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reward", err)
	}
	return id, nil
}

func (r *ReferralRepository) ExistsForReferred(ctx context.Context, ex db.Executor, referredID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM referrals WHERE referred_id = $1)`

	var exists bool
	if err := ex.QueryRow(ctx, query, referredID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check referral existence", err)
	}
	return exists, nil
}
