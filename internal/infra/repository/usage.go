package repository

import (
	"context"
	"time"

	"aquaflow/internal/domain/usage"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UsageRepository struct{}

func NewUsageRepository() *UsageRepository {
	return &UsageRepository{}
}

func (r *UsageRepository) Create(ctx context.Context, ex db.Executor, entry *usage.Entry) (uuid.UUID, error) {
	const query = `
		INSERT INTO water_usage (id, user_id, date, litres_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		entry.ID(), entry.UserID(), entry.Date(), entry.Litres().String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("usage entry user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create usage entry", err)
	}
	return id, nil
}

func (r *UsageRepository) FindAllByUserID(ctx context.Context, ex db.Executor, userID uuid.UUID) ([]*usage.Entry, error) {
	const query = `
		SELECT id, user_id, date, litres_used::text, created_at, updated_at
		FROM water_usage
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC`

	rows, err := ex.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list usage entries", err)
	}
	defer rows.Close()

	var entries []*usage.Entry
	for rows.Next() {
		var (
			id, uid              uuid.UUID
			date                 time.Time
			litresRaw            string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &uid, &date, &litresRaw, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan usage entry", err)
		}

		d, err := pgconv.DecimalFromText(litresRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("stored litres value is invalid", err)
		}
		litres, err := usage.NewLitres(d)
		if err != nil {
			return nil, infra.WrapRepoErr("stored litres value is invalid", err)
		}

		entries = append(entries, usage.ReconstructEntry(id, uid, date, litres, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate usage entries", err)
	}
	return entries, nil
}
