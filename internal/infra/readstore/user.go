package readstore

import (
	"context"

	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.Executor
}

func NewUserReadStore(ex db.Executor) *UserReadStore {
	return &UserReadStore{db: ex}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, username, phone, address, city, state, country, zip_code,
		       referral_code, role, last_login, is_active, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Email, &v.Username, &v.Phone, &v.Address, &v.City, &v.State, &v.Country, &v.ZipCode,
		&v.ReferralCode, &v.Role, &v.LastLogin, &v.IsActive, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user view", err)
	}
	return &v, nil
}
