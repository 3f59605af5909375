package commands

import (
	"context"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReminderNotFoundWrite = errs.New("reminder not found")
	ErrReminderNotOwned      = errs.New("reminder not owned by user")
)

type ReminderCommands interface {
	// MarkStatus advances a reminder along pending -> sent -> read.
	// Backward moves and unknown statuses are rejected.
	MarkStatus(ctx context.Context, reminderID uuid.UUID, actorID uuid.UUID, actorRole user.Role, status string) (*reminder.Reminder, error)
}

type reminderUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewReminderUseCase(uow shared.UnitOfWork) ReminderCommands {
	return &reminderUseCaseImpl{uow: uow}
}

func (uc *reminderUseCaseImpl) MarkStatus(ctx context.Context, reminderID uuid.UUID, actorID uuid.UUID, actorRole user.Role, status string) (*reminder.Reminder, error) {
	next, err := reminder.NewStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *reminder.Reminder
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rem, derr := tx.Reads().ReminderByID(ctx, reminderID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReminderNotFoundWrite
			}
			return derr
		}

		if actorRole != user.RoleAdmin && rem.UserID() != actorID {
			return ErrReminderNotOwned
		}

		if derr = rem.AdvanceTo(next); derr != nil {
			return derr
		}
		if derr = tx.Reminders().UpdateStatus(ctx, tx.DB(), rem); derr != nil {
			return derr
		}
		updated = rem
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
