package commands

import (
	"context"
	"log/slog"
	"time"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/domain/usage"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordUsageRequest struct {
	Date   *time.Time
	Litres string
}

type RecordUsageResult struct {
	EntryID  uuid.UUID
	Snapshot *impact.Snapshot
}

type UsageCommands interface {
	// RecordUsage appends one consumption entry and refreshes the
	// eco-impact snapshot from the updated ledger.
	RecordUsage(ctx context.Context, userID uuid.UUID, req RecordUsageRequest) (*RecordUsageResult, error)
}

type usageUseCaseImpl struct {
	uow    shared.UnitOfWork
	impact EcoImpactCommands
	clock  clock.Clock
}

func NewUsageUseCase(uow shared.UnitOfWork, impactCmd EcoImpactCommands, clk clock.Clock) UsageCommands {
	return &usageUseCaseImpl{uow: uow, impact: impactCmd, clock: clk}
}

func (uc *usageUseCaseImpl) RecordUsage(ctx context.Context, userID uuid.UUID, req RecordUsageRequest) (*RecordUsageResult, error) {
	litres, err := usage.ParseLitres(req.Litres)
	if err != nil {
		return nil, err
	}

	entry := usage.NewEntry(userID, req.Date, litres, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Usage().Create(ctx, tx.DB(), entry)
		return derr
	})
	if err != nil {
		return nil, err
	}

	// The entry is durable at this point. A failed recompute leaves a
	// stale snapshot behind, which the next write or forced recompute
	// repairs, so it does not fail the request.
	snapshot, err := uc.impact.Recompute(ctx, userID)
	if err != nil {
		slog.Warn("failed to recompute eco impact after usage append",
			"user_id", userID.String(), "error", err.Error())
	}

	return &RecordUsageResult{EntryID: entry.ID(), Snapshot: snapshot}, nil
}
