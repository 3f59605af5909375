package repository

import (
	"context"
	"time"

	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionRepository struct{}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

func (r *SubscriptionRepository) Create(ctx context.Context, ex db.Executor, sub *subscription.Subscription) (uuid.UUID, error) {
	const query = `
		INSERT INTO subscriptions (id, user_id, status, start_date, next_billing_date, stripe_customer_id, stripe_subscription_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		sub.ID(), sub.UserID(), sub.Status().String(), sub.StartDate(), sub.NextBillingDate(),
		sub.StripeCustomerID(), sub.StripeSubscriptionID(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("user already has a subscription", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("subscription user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create subscription", err)
	}
	return id, nil
}

func (r *SubscriptionRepository) UpdateStripeRefs(ctx context.Context, ex db.Executor, sub *subscription.Subscription) error {
	const query = `
		UPDATE subscriptions
		SET status = $2, stripe_customer_id = $3, stripe_subscription_id = $4
		WHERE id = $1`

	tag, err := ex.Exec(ctx, query,
		sub.ID(), sub.Status().String(), sub.StripeCustomerID(), sub.StripeSubscriptionID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription stripe refs", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, ex db.Executor, subID uuid.UUID, status subscription.Status) error {
	const query = `UPDATE subscriptions SET status = $2 WHERE id = $1`

	tag, err := ex.Exec(ctx, query, subID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update subscription status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriptionRepository) FindByUserID(ctx context.Context, ex db.Executor, userID uuid.UUID) (*subscription.Subscription, error) {
	const query = `
		SELECT id, user_id, status, start_date, next_billing_date, stripe_customer_id, stripe_subscription_id, created_at
		FROM subscriptions
		WHERE user_id = $1`

	var (
		id, uid                              uuid.UUID
		statusRaw                            string
		startDate, nextBillingDate, created  time.Time
		stripeCustomerID, stripeSubscription *string
	)
	err := ex.QueryRow(ctx, query, userID).Scan(
		&id, &uid, &statusRaw, &startDate, &nextBillingDate,
		&stripeCustomerID, &stripeSubscription, &created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}

	status, err := subscription.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored subscription status is invalid", err)
	}

	return subscription.ReconstructSubscription(
		id, uid, status, startDate, nextBillingDate, stripeCustomerID, stripeSubscription, created,
	), nil
}
