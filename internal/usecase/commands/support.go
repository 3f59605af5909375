package commands

import (
	"context"

	"aquaflow/internal/domain/support"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	Title       string
	Description string
	ImageURL    *string
}

type CreateTicketResult struct {
	TicketID uuid.UUID
}

type SupportCommands interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, req CreateTicketRequest) (*CreateTicketResult, error)
}

type supportUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSupportUseCase(uow shared.UnitOfWork, clk clock.Clock) SupportCommands {
	return &supportUseCaseImpl{uow: uow, clock: clk}
}

func (uc *supportUseCaseImpl) CreateTicket(ctx context.Context, userID uuid.UUID, req CreateTicketRequest) (*CreateTicketResult, error) {
	ticket, err := support.NewTicket(userID, req.Title, req.Description, req.ImageURL, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.SupportTickets().Create(ctx, tx.DB(), ticket)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &CreateTicketResult{TicketID: ticket.ID()}, nil
}
