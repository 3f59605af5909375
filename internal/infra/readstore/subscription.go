package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadStore struct {
	db db.Executor
}

func NewSubscriptionReadStore(ex db.Executor) *SubscriptionReadStore {
	return &SubscriptionReadStore{db: ex}
}

func (r *SubscriptionReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.SubscriptionView, error) {
	const query = `
		SELECT id, user_id, status, start_date, next_billing_date,
		       stripe_customer_id, stripe_subscription_id, created_at
		FROM subscriptions
		WHERE user_id = $1`

	var v queries.SubscriptionView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.UserID, &v.Status, &v.StartDate, &v.NextBillingDate,
		&v.StripeCustomerID, &v.StripeSubscriptionID, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription view", err)
	}
	return &v, nil
}
