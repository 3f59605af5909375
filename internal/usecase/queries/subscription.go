package queries

import (
	"context"

	"github.com/google/uuid"

	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/errs"
)

var ErrSubscriptionNotFound = errs.New("subscription not found")

type SubscriptionQueries interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error)
}

type SubscriptionReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	readStore SubscriptionReadStore
}

func NewSubscriptionQueries(readStore SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{readStore: readStore}
}

func (q *subscriptionQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*SubscriptionView, error) {
	sub, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return sub, nil
}
