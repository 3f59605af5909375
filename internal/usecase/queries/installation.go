package queries

import (
	"context"

	"github.com/google/uuid"
)

type InstallationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*InstallationView, error)
}

type InstallationReadStore interface {
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*InstallationView, error)
}

type installationQueriesImpl struct {
	readStore InstallationReadStore
}

func NewInstallationQueries(readStore InstallationReadStore) InstallationQueries {
	return &installationQueriesImpl{readStore: readStore}
}

func (q *installationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*InstallationView, error) {
	return q.readStore.FindAllByUserID(ctx, userID)
}
