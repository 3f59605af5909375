package commands

import (
	"context"
	"log/slog"
	"time"

	"aquaflow/internal/domain/installation"
	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleInstallationRequest struct {
	ScheduledDate time.Time
	Notes         *string
}

type ScheduleInstallationResult struct {
	InstallationID uuid.UUID
}

type InstallationCommands interface {
	Schedule(ctx context.Context, userID uuid.UUID, req ScheduleInstallationRequest) (*ScheduleInstallationResult, error)
}

type installationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInstallationUseCase(uow shared.UnitOfWork, clk clock.Clock) InstallationCommands {
	return &installationUseCaseImpl{uow: uow, clock: clk}
}

func (uc *installationUseCaseImpl) Schedule(ctx context.Context, userID uuid.UUID, req ScheduleInstallationRequest) (*ScheduleInstallationResult, error) {
	inst := installation.NewInstallation(userID, req.ScheduledDate, req.Notes, uc.clock.Now())

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Installations().Create(ctx, tx.DB(), inst)
		return derr
	})
	if err != nil {
		return nil, err
	}

	// Best effort: the visit is booked, a missing nudge must not unbook it.
	rem := reminder.ForInstallation(userID, req.ScheduledDate, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reminders().Create(ctx, tx.DB(), rem)
		return derr
	})
	if err != nil {
		slog.Warn("failed to schedule installation reminder",
			"user_id", userID.String(),
			"installation_id", inst.ID().String(),
			"error", err.Error())
	}

	return &ScheduleInstallationResult{InstallationID: inst.ID()}, nil
}
