package repository

import (
	"context"
	"time"

	"aquaflow/internal/domain/installation"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InstallationRepository struct{}

func NewInstallationRepository() *InstallationRepository {
	return &InstallationRepository{}
}

func (r *InstallationRepository) Create(ctx context.Context, ex db.Executor, inst *installation.Installation) (uuid.UUID, error) {
	const query = `
		INSERT INTO installations (id, user_id, scheduled_date, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		inst.ID(), inst.UserID(), inst.ScheduledDate(), inst.Status().String(), inst.Notes(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("installation user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create installation", err)
	}
	return id, nil
}

func (r *InstallationRepository) UpdateStatus(ctx context.Context, ex db.Executor, instID uuid.UUID, status installation.Status) error {
	const query = `UPDATE installations SET status = $2 WHERE id = $1`

	tag, err := ex.Exec(ctx, query, instID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update installation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("installation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InstallationRepository) FindByID(ctx context.Context, ex db.Executor, id uuid.UUID) (*installation.Installation, error) {
	const query = `
		SELECT id, user_id, scheduled_date, status, notes, created_at
		FROM installations
		WHERE id = $1`

	var (
		instID, userID     uuid.UUID
		scheduled, created time.Time
		statusRaw          string
		notes              *string
	)
	err := ex.QueryRow(ctx, query, id).Scan(&instID, &userID, &scheduled, &statusRaw, &notes, &created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("installation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get installation", err)
	}

	status, err := installation.NewStatus(statusRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored installation status is invalid", err)
	}

	return installation.ReconstructInstallation(instID, userID, scheduled, status, notes, created), nil
}
