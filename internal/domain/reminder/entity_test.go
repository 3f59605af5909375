//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"aquaflow/internal/domain/reminder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    reminder.Status
		to      reminder.Status
		allowed bool
	}{
		{name: "pending to sent", from: reminder.StatusPending, to: reminder.StatusSent, allowed: true},
		{name: "pending to read", from: reminder.StatusPending, to: reminder.StatusRead, allowed: true},
		{name: "sent to read", from: reminder.StatusSent, to: reminder.StatusRead, allowed: true},
		{name: "sent back to pending", from: reminder.StatusSent, to: reminder.StatusPending, allowed: false},
		{name: "read back to sent", from: reminder.StatusRead, to: reminder.StatusSent, allowed: false},
		{name: "read back to pending", from: reminder.StatusRead, to: reminder.StatusPending, allowed: false},
		{name: "pending to pending", from: reminder.StatusPending, to: reminder.StatusPending, allowed: false},
	}

	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := reminder.ReconstructReminder(
				uuid.New(), uuid.New(), reminder.TypeMaintenance,
				"Monthly Service Reminder", "msg", now.AddDate(0, 0, 14),
				tc.from, now,
			)

			err := r.AdvanceTo(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, r.Status())
			} else {
				assert.ErrorIs(t, err, reminder.ErrTransitionNotAllowed)
				assert.Equal(t, tc.from, r.Status())
			}
		})
	}
}

func TestScheduleOffsets(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 5, 10, 8, 30, 0, 0, time.UTC)

	t.Run("subscription schedules maintenance and payment reminders", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		got := reminder.ForSubscription(userID, start, now)
		require.Len(t, got, 2)

		maintenance, payment := got[0], got[1]
		assert.Equal(t, reminder.TypeMaintenance, maintenance.Type())
		assert.Equal(t, time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC), maintenance.ScheduledDate())
		assert.Equal(t, reminder.TypePayment, payment.Type())
		assert.Equal(t, time.Date(2025, 6, 26, 0, 0, 0, 0, time.UTC), payment.ScheduledDate())
		for _, r := range got {
			assert.Equal(t, reminder.StatusPending, r.Status())
			assert.Equal(t, userID, r.UserID())
		}
	})

	t.Run("installation reminder is due one day before the visit", func(t *testing.T) {
		scheduled := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

		r := reminder.ForInstallation(userID, scheduled, now)
		assert.Equal(t, reminder.TypeInstallation, r.Type())
		assert.Equal(t, time.Date(2025, 5, 19, 10, 0, 0, 0, time.UTC), r.ScheduledDate())
	})

	t.Run("month-end start date rolls with calendar arithmetic", func(t *testing.T) {
		start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

		got := reminder.ForSubscription(userID, start, now)
		require.Len(t, got, 2)
		// Jan 31 + 1 month normalizes to Mar 3 in a non-leap year.
		assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got[0].ScheduledDate())
		assert.Equal(t, time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC), got[1].ScheduledDate())
	})
}
