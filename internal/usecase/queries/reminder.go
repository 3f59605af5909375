package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReminderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReminderView, error)
	// ListPendingDue returns pending reminders whose scheduled date has
	// arrived, with contact details for the dispatch poller.
	ListPendingDue(ctx context.Context, asOf time.Time) ([]*PendingReminderView, error)
}

type ReminderReadStore interface {
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*ReminderView, error)
	FindPendingDue(ctx context.Context, asOf time.Time) ([]*PendingReminderView, error)
}

type reminderQueriesImpl struct {
	readStore ReminderReadStore
}

func NewReminderQueries(readStore ReminderReadStore) ReminderQueries {
	return &reminderQueriesImpl{readStore: readStore}
}

func (q *reminderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReminderView, error) {
	return q.readStore.FindAllByUserID(ctx, userID)
}

func (q *reminderQueriesImpl) ListPendingDue(ctx context.Context, asOf time.Time) ([]*PendingReminderView, error) {
	return q.readStore.FindPendingDue(ctx, asOf)
}
