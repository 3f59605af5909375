package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type EcoImpactReadStore struct {
	db db.Executor
}

func NewEcoImpactReadStore(ex db.Executor) *EcoImpactReadStore {
	return &EcoImpactReadStore{db: ex}
}

func (r *EcoImpactReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.EcoImpactView, error) {
	const query = `
		SELECT id, user_id, plastic_bottles_saved, co2_reduced::text, water_saved::text, last_calculated
		FROM eco_impact
		WHERE user_id = $1`

	var v queries.EcoImpactView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.UserID, &v.PlasticBottlesSaved, &v.CO2Reduced, &v.WaterSaved, &v.LastCalculated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("eco impact snapshot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get eco impact view", err)
	}
	return &v, nil
}
