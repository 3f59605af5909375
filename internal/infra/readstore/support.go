package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type SupportTicketReadStore struct {
	db db.Executor
}

func NewSupportTicketReadStore(ex db.Executor) *SupportTicketReadStore {
	return &SupportTicketReadStore{db: ex}
}

func (r *SupportTicketReadStore) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TicketView, error) {
	const query = `
		SELECT id, user_id, title, description, status, image_url, created_at
		FROM support_tickets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list support tickets", err)
	}
	defer rows.Close()

	var views []*queries.TicketView
	for rows.Next() {
		var v queries.TicketView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.Description, &v.Status, &v.ImageURL, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan support ticket", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate support tickets", err)
	}
	return views, nil
}
