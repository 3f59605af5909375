package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type InstallationReadStore struct {
	db db.Executor
}

func NewInstallationReadStore(ex db.Executor) *InstallationReadStore {
	return &InstallationReadStore{db: ex}
}

func (r *InstallationReadStore) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.InstallationView, error) {
	const query = `
		SELECT id, user_id, scheduled_date, status, notes, created_at
		FROM installations
		WHERE user_id = $1
		ORDER BY scheduled_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list installations", err)
	}
	defer rows.Close()

	var views []*queries.InstallationView
	for rows.Next() {
		var v queries.InstallationView
		if err := rows.Scan(&v.ID, &v.UserID, &v.ScheduledDate, &v.Status, &v.Notes, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan installation", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate installations", err)
	}
	return views, nil
}
