package repository

import (
	"context"
	"time"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, ex db.Executor, p *shared.PaymentSnapshot) (uuid.UUID, error) {
	const query = `
		INSERT INTO payment_transactions (id, user_id, transaction_id, amount, currency, gateway, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		p.ID, p.UserID, p.TransactionID, p.Amount.String(), p.Currency, p.Gateway, p.Status,
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("payment transaction already recorded", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create payment transaction", err)
	}
	return id, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, ex db.Executor, transactionID, status string) error {
	const query = `UPDATE payment_transactions SET status = $2 WHERE transaction_id = $1`

	tag, err := ex.Exec(ctx, query, transactionID, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment transaction not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, ex db.Executor, transactionID string) (*shared.PaymentSnapshot, error) {
	const query = `
		SELECT id, user_id, transaction_id, amount::text, currency, gateway, status, created_at
		FROM payment_transactions
		WHERE transaction_id = $1`

	var (
		id, userID                 uuid.UUID
		txID, amountRaw            string
		currency, gateway, status  string
		createdAt                  time.Time
	)
	err := ex.QueryRow(ctx, query, transactionID).Scan(
		&id, &userID, &txID, &amountRaw, &currency, &gateway, &status, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment transaction", err)
	}

	amount, err := pgconv.DecimalFromText(amountRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored payment amount is invalid", err)
	}

	return &shared.PaymentSnapshot{
		ID:            id,
		UserID:        userID,
		TransactionID: txID,
		Amount:        amount,
		Currency:      currency,
		Gateway:       gateway,
		Status:        status,
		CreatedAt:     createdAt,
	}, nil
}
