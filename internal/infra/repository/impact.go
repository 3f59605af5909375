package repository

import (
	"context"
	"time"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ImpactRepository struct{}

func NewImpactRepository() *ImpactRepository {
	return &ImpactRepository{}
}

// AcquireUserLock takes a transaction-scoped advisory lock keyed on the
// user id, so two concurrent recomputations for the same user serialize
// and the later one sees the earlier one's usage rows.
func (r *ImpactRepository) AcquireUserLock(ctx context.Context, ex db.Executor, userID uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

	if _, err := ex.Exec(ctx, query, userID.String()); err != nil {
		return infra.WrapRepoErr("failed to acquire impact lock", err)
	}
	return nil
}

func (r *ImpactRepository) Upsert(ctx context.Context, ex db.Executor, userID uuid.UUID, metrics impact.Metrics, calculatedAt time.Time) (*impact.Snapshot, error) {
	const query = `
		INSERT INTO eco_impact (id, user_id, plastic_bottles_saved, co2_reduced, water_saved, last_calculated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET plastic_bottles_saved = EXCLUDED.plastic_bottles_saved,
		    co2_reduced = EXCLUDED.co2_reduced,
		    water_saved = EXCLUDED.water_saved,
		    last_calculated = EXCLUDED.last_calculated
		RETURNING id, user_id, plastic_bottles_saved, co2_reduced::text, water_saved::text, last_calculated`

	var (
		id, uid         uuid.UUID
		bottles         int64
		co2Raw, watRaw  string
		lastCalculated  time.Time
	)
	err := ex.QueryRow(ctx, query,
		uuid.New(), userID, metrics.PlasticBottlesSaved,
		metrics.CO2Reduced.String(), metrics.WaterSaved.String(), calculatedAt,
	).Scan(&id, &uid, &bottles, &co2Raw, &watRaw, &lastCalculated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert eco impact", err)
	}

	co2, err := pgconv.DecimalFromText(co2Raw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored co2 value is invalid", err)
	}
	water, err := pgconv.DecimalFromText(watRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored water value is invalid", err)
	}

	return impact.ReconstructSnapshot(id, uid, bottles, co2, water, lastCalculated), nil
}
