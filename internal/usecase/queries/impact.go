package queries

import (
	"context"

	"github.com/google/uuid"

	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/errs"
)

var ErrEcoImpactNotFound = errs.New("eco impact snapshot not found")

type EcoImpactQueries interface {
	// GetCurrent returns the cached snapshot without recomputation.
	// Callers decide whether a miss triggers a recompute.
	GetCurrent(ctx context.Context, userID uuid.UUID) (*EcoImpactView, error)
}

type EcoImpactReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*EcoImpactView, error)
}

type ecoImpactQueriesImpl struct {
	readStore EcoImpactReadStore
}

func NewEcoImpactQueries(readStore EcoImpactReadStore) EcoImpactQueries {
	return &ecoImpactQueriesImpl{readStore: readStore}
}

func (q *ecoImpactQueriesImpl) GetCurrent(ctx context.Context, userID uuid.UUID) (*EcoImpactView, error) {
	snap, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEcoImpactNotFound
		}
		return nil, err
	}
	return snap, nil
}
