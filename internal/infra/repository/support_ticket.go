package repository

import (
	"context"

	"aquaflow/internal/domain/support"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SupportTicketRepository struct{}

func NewSupportTicketRepository() *SupportTicketRepository {
	return &SupportTicketRepository{}
}

func (r *SupportTicketRepository) Create(ctx context.Context, ex db.Executor, ticket *support.Ticket) (uuid.UUID, error) {
	const query = `
		INSERT INTO support_tickets (id, user_id, title, description, status, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		ticket.ID(), ticket.UserID(), ticket.Title(), ticket.Description(),
		ticket.Status().String(), ticket.ImageURL(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("ticket user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create support ticket", err)
	}
	return id, nil
}
