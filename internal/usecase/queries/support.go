package queries

import (
	"context"

	"github.com/google/uuid"
)

type SupportTicketQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
}

type SupportTicketReadStore interface {
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*TicketView, error)
}

type supportTicketQueriesImpl struct {
	readStore SupportTicketReadStore
}

func NewSupportTicketQueries(readStore SupportTicketReadStore) SupportTicketQueries {
	return &supportTicketQueriesImpl{readStore: readStore}
}

func (q *supportTicketQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketView, error) {
	return q.readStore.FindAllByUserID(ctx, userID)
}
