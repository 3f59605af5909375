package readstore

import (
	"context"
	"time"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReminderReadStore struct {
	db db.Executor
}

func NewReminderReadStore(ex db.Executor) *ReminderReadStore {
	return &ReminderReadStore{db: ex}
}

func (r *ReminderReadStore) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReminderView, error) {
	const query = `
		SELECT id, user_id, type, title, message, scheduled_date, status, created_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY scheduled_date ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminders", err)
	}
	defer rows.Close()

	var views []*queries.ReminderView
	for rows.Next() {
		var v queries.ReminderView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Type, &v.Title, &v.Message, &v.ScheduledDate, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminders", err)
	}
	return views, nil
}

func (r *ReminderReadStore) FindPendingDue(ctx context.Context, asOf time.Time) ([]*queries.PendingReminderView, error) {
	const query = `
		SELECT rm.id, rm.user_id, rm.type, rm.title, rm.message, rm.scheduled_date, rm.status, rm.created_at,
		       u.email, u.username, u.phone
		FROM reminders rm
		JOIN users u ON u.id = rm.user_id
		WHERE rm.status = 'pending' AND rm.scheduled_date <= $1
		ORDER BY rm.scheduled_date ASC`

	rows, err := r.db.Query(ctx, query, asOf)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reminders", err)
	}
	defer rows.Close()

	var views []*queries.PendingReminderView
	for rows.Next() {
		var v queries.PendingReminderView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Type, &v.Title, &v.Message, &v.ScheduledDate, &v.Status, &v.CreatedAt,
			&v.UserEmail, &v.UserUsername, &v.UserPhone,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending reminder", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending reminders", err)
	}
	return views, nil
}
