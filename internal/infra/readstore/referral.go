package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReferralReadStore struct {
	db db.Executor
}

func NewReferralReadStore(ex db.Executor) *ReferralReadStore {
	return &ReferralReadStore{db: ex}
}

func (r *ReferralReadStore) FindReferralCode(ctx context.Context, userID uuid.UUID) (string, error) {
	const query = `SELECT referral_code FROM users WHERE id = $1`

	var code string
	if err := r.db.QueryRow(ctx, query, userID).Scan(&code); err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get referral code", err)
	}
	return code, nil
}

func (r *ReferralReadStore) FindReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*queries.ReferralView, error) {
	const query = `
		SELECT rf.id, u.username, u.email, rf.status, rf.created_at
		FROM referrals rf
		JOIN users u ON u.id = rf.referred_id
		WHERE rf.referrer_id = $1
		ORDER BY rf.created_at DESC`

	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list referrals", err)
	}
	defer rows.Close()

	var views []*queries.ReferralView
	for rows.Next() {
		var v queries.ReferralView
		if err := rows.Scan(&v.ID, &v.ReferredUsername, &v.ReferredEmail, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan referral", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate referrals", err)
	}
	return views, nil
}

func (r *ReferralReadStore) FindRewardsByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RewardView, error) {
	const query = `
		SELECT id, referral_id, discount_amount, status, expires_at, created_at
		FROM rewards
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards", err)
	}
	defer rows.Close()

	var views []*queries.RewardView
	for rows.Next() {
		var v queries.RewardView
		if err := rows.Scan(&v.ID, &v.ReferralID, &v.DiscountAmount, &v.Status, &v.ExpiresAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reward", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rewards", err)
	}
	return views, nil
}
