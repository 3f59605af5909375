//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReminder(uow *fakeUoW, userID uuid.UUID) *reminder.Reminder {
	rem := reminder.NewReminder(
		userID,
		reminder.TypeMaintenance,
		"Monthly Service Reminder",
		"Service visit coming up.",
		time.Now().AddDate(0, 0, 7),
		time.Now(),
	)
	uow.reminders[rem.ID()] = rem
	return rem
}

func TestMarkStatus_AdvancesReminder(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	uc := commands.NewReminderUseCase(uow)
	userID := uuid.New()
	rem := seedReminder(uow, userID)

	updated, err := uc.MarkStatus(ctx, rem.ID(), userID, user.RoleCustomer, "sent")
	require.NoError(t, err)
	assert.Equal(t, reminder.StatusSent, updated.Status())
	assert.Equal(t, reminder.StatusSent, uow.reminders[rem.ID()].Status())

	// sent -> read is still forward.
	updated, err = uc.MarkStatus(ctx, rem.ID(), userID, user.RoleCustomer, "read")
	require.NoError(t, err)
	assert.Equal(t, reminder.StatusRead, updated.Status())
}

func TestMarkStatus_PendingSkipsToRead(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	uc := commands.NewReminderUseCase(uow)
	userID := uuid.New()
	rem := seedReminder(uow, userID)

	updated, err := uc.MarkStatus(ctx, rem.ID(), userID, user.RoleCustomer, "read")
	require.NoError(t, err)
	assert.Equal(t, reminder.StatusRead, updated.Status())
}

func TestMarkStatus_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("backward move", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewReminderUseCase(uow)
		userID := uuid.New()
		rem := seedReminder(uow, userID)

		_, err := uc.MarkStatus(ctx, rem.ID(), userID, user.RoleCustomer, "sent")
		require.NoError(t, err)

		_, err = uc.MarkStatus(ctx, rem.ID(), userID, user.RoleCustomer, "pending")
		assert.ErrorIs(t, err, reminder.ErrTransitionNotAllowed)
	})

	t.Run("unknown status", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewReminderUseCase(uow)
		userID := uuid.New()
		rem := seedReminder(uow, userID)

		_, err := uc.MarkStatus(ctx, rem.ID(), userID, user.RoleCustomer, "archived")
		assert.ErrorIs(t, err, reminder.ErrInvalidStatus)
	})

	t.Run("not the owner", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewReminderUseCase(uow)
		rem := seedReminder(uow, uuid.New())

		_, err := uc.MarkStatus(ctx, rem.ID(), uuid.New(), user.RoleCustomer, "sent")
		assert.ErrorIs(t, err, commands.ErrReminderNotOwned)
		assert.Equal(t, reminder.StatusPending, uow.reminders[rem.ID()].Status())
	})

	t.Run("not found", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewReminderUseCase(uow)

		_, err := uc.MarkStatus(ctx, uuid.New(), uuid.New(), user.RoleCustomer, "sent")
		assert.ErrorIs(t, err, commands.ErrReminderNotFoundWrite)
	})
}

func TestMarkStatus_AdminBypassesOwnership(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	uc := commands.NewReminderUseCase(uow)
	rem := seedReminder(uow, uuid.New())

	updated, err := uc.MarkStatus(ctx, rem.ID(), uuid.New(), user.RoleAdmin, "sent")
	require.NoError(t, err)
	assert.Equal(t, reminder.StatusSent, updated.Status())
}
