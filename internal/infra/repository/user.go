package repository

import (
	"context"
	"time"

	"aquaflow/internal/domain/user"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, ex db.Executor, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, username, phone, referral_code, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := ex.QueryRow(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Username(), u.Phone(),
		u.ReferralCode(), u.Role().String(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("user already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, ex db.Executor, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := ex.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, ex db.Executor, u *user.User) error {
	const query = `
		UPDATE users
		SET username = $2, phone = $3, address = $4, city = $5, state = $6,
		    country = $7, zip_code = $8, updated_at = now()
		WHERE id = $1`

	tag, err := ex.Exec(ctx, query,
		u.ID(), u.Username(), u.Phone(), u.Address(), u.City(), u.State(), u.Country(), u.ZipCode(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, ex db.Executor, email string) (*user.User, error) {
	return r.findOne(ctx, ex, `WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, ex db.Executor, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, ex, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByReferralCode(ctx context.Context, ex db.Executor, code string) (*user.User, error) {
	return r.findOne(ctx, ex, `WHERE referral_code = $1`, code)
}

func (r *UserRepository) findOne(ctx context.Context, ex db.Executor, where string, arg any) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, username, phone, address, city, state, country, zip_code,
		       referral_code, role, last_login, is_active, created_at, updated_at
		FROM users ` + where

	var (
		id                            uuid.UUID
		emailRaw, passwordHash        string
		username, phone, referralCode string
		address, city, country        *string
		state, zipCode                *string
		roleRaw                       string
		lastLogin                     *time.Time
		isActive                      bool
		createdAt, updatedAt          time.Time
	)
	err := ex.QueryRow(ctx, query, arg).Scan(
		&id, &emailRaw, &passwordHash, &username, &phone, &address, &city, &state, &country, &zipCode,
		&referralCode, &roleRaw, &lastLogin, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	role, err := user.NewRole(roleRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}

	return user.ReconstructUser(
		id, email, passwordHash, username, phone,
		address, city, state, country, zipCode,
		referralCode, role, lastLogin, isActive, createdAt, updatedAt,
	), nil
}
