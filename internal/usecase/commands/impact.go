package commands

import (
	"context"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type EcoImpactCommands interface {
	// Recompute rebuilds the snapshot from the full usage history and
	// persists it, returning the stored result.
	Recompute(ctx context.Context, userID uuid.UUID) (*impact.Snapshot, error)
}

type ecoImpactUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEcoImpactUseCase(uow shared.UnitOfWork, clk clock.Clock) EcoImpactCommands {
	return &ecoImpactUseCaseImpl{uow: uow, clock: clk}
}

func (uc *ecoImpactUseCaseImpl) Recompute(ctx context.Context, userID uuid.UUID) (*impact.Snapshot, error) {
	var snapshot *impact.Snapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serialize per user so concurrent recomputations cannot
		// overwrite each other with stale aggregates.
		if err := tx.Impact().AcquireUserLock(ctx, tx.DB(), userID); err != nil {
			return err
		}

		entries, err := tx.Usage().FindAllByUserID(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		metrics := impact.Calculate(entries)

		snapshot, err = tx.Impact().Upsert(ctx, tx.DB(), userID, metrics, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
