package repository

import (
	"context"
	"time"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReminderRepository struct{}

func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{}
}

func (r *ReminderRepository) Create(ctx context.Context, ex db.Executor, rem *reminder.Reminder) (uuid.UUID, error) {
	const query = `
		INSERT INTO reminders (id, user_id, type, title, message, scheduled_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		rem.ID(), rem.UserID(), rem.Type().String(), rem.Title(), rem.Message(),
		rem.ScheduledDate(), rem.Status().String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reminder user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reminder", err)
	}
	return id, nil
}

func (r *ReminderRepository) UpdateStatus(ctx context.Context, ex db.Executor, rem *reminder.Reminder) error {
	const query = `UPDATE reminders SET status = $2 WHERE id = $1`

	tag, err := ex.Exec(ctx, query, rem.ID(), rem.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reminder status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReminderRepository) FindByID(ctx context.Context, ex db.Executor, id uuid.UUID) (*reminder.Reminder, error) {
	const query = `
		SELECT id, user_id, type, title, message, scheduled_date, status, created_at
		FROM reminders
		WHERE id = $1`

	var (
		remID, userID      uuid.UUID
		typeRaw, statusRaw string
		title, message     string
		scheduled, created time.Time
	)
	err := ex.QueryRow(ctx, query, id).Scan(
		&remID, &userID, &typeRaw, &title, &message, &scheduled, &statusRaw, &created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reminder not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reminder", err)
	}

	status, err := reminder.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reminder status is invalid", err)
	}

	return reminder.ReconstructReminder(
		remID, userID, reminder.Type(typeRaw), title, message, scheduled, status, created,
	), nil
}
