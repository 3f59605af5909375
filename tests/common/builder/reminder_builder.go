//go:build unit || e2e

package builder

import (
	"time"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReminderBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          reminder.Type
	Title         string
	Message       string
	ScheduledDate time.Time
	Status        reminder.Status
	CreatedAt     time.Time
}

func NewReminderBuilder() *ReminderBuilder {
	now := time.Now()
	return &ReminderBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Type:          reminder.TypeMaintenance,
		Title:         "Monthly Service Reminder",
		Message:       "Your filter service visit is coming up.",
		ScheduledDate: now.AddDate(0, 0, 7),
		Status:        reminder.StatusPending,
		CreatedAt:     now,
	}
}

func (b *ReminderBuilder) With(mutate func(*ReminderBuilder)) *ReminderBuilder {
	mutate(b)
	return b
}

func (b *ReminderBuilder) BuildDomain() *reminder.Reminder {
	return reminder.ReconstructReminder(b.ID, b.UserID, b.Type, b.Title, b.Message, b.ScheduledDate, b.Status, b.CreatedAt)
}

func (b *ReminderBuilder) BuildView() *queries.ReminderView {
	return &queries.ReminderView{
		ID:            b.ID,
		UserID:        b.UserID,
		Type:          string(b.Type),
		Title:         b.Title,
		Message:       b.Message,
		ScheduledDate: b.ScheduledDate,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
