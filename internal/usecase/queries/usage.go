package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aquaflow/internal/pkg/errs"
)

var ErrInvalidUsageRange = errs.New("usage range start is after end")

// UsageFilters narrows the listing to an inclusive [From, To] window.
// Either bound may be nil.
type UsageFilters struct {
	From *time.Time
	To   *time.Time
}

type UsageQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filters UsageFilters) ([]*UsageEntryView, error)
}

type UsageReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID, filters UsageFilters) ([]*UsageEntryView, error)
}

type usageQueriesImpl struct {
	readStore UsageReadStore
}

func NewUsageQueries(readStore UsageReadStore) UsageQueries {
	return &usageQueriesImpl{readStore: readStore}
}

func (q *usageQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filters UsageFilters) ([]*UsageEntryView, error) {
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return nil, ErrInvalidUsageRange
	}
	return q.readStore.FindByUserID(ctx, userID, filters)
}
