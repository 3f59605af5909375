package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsageReadStore struct {
	db db.Executor
}

func NewUsageReadStore(ex db.Executor) *UsageReadStore {
	return &UsageReadStore{db: ex}
}

// FindByUserID applies the optional window bounds inclusively on both ends.
func (r *UsageReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, filters queries.UsageFilters) ([]*queries.UsageEntryView, error) {
	const query = `
		SELECT id, user_id, date, litres_used::text, created_at
		FROM water_usage
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, userID, filters.From, filters.To)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list usage entries", err)
	}
	defer rows.Close()

	var views []*queries.UsageEntryView
	for rows.Next() {
		var v queries.UsageEntryView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Date, &v.LitresUsed, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan usage entry", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate usage entries", err)
	}
	return views, nil
}
