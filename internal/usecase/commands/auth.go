package commands

import (
	"context"
	"log/slog"

	"aquaflow/internal/domain/referral"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/pkg/jwt"
	"aquaflow/internal/pkg/password"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrUserNotFoundWrite    = errs.New("user not found")
	ErrReferralCodeNotFound = errs.New("referral code not found")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterRequest struct {
	Email        string
	Password     string
	Username     string
	Phone        string
	ReferralCode *string
}

type AuthResult struct {
	Token  string
	UserID uuid.UUID
	Role   user.Role
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, creds user.Credentials) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type UpdateProfileRequest struct {
	Username *string
	Phone    *string
	Address  *string
	City     *string
	State    *string
	Country  *string
	ZipCode  *string
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwtService: jwtService, clock: clk}
}

func (uc *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser, err := user.NewUser(email, hash, req.Username, req.Phone, user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	// A bad referral code fails fast, before the user row exists.
	var referrer *user.User
	if req.ReferralCode != nil && *req.ReferralCode != "" {
		referrer, err = uc.uow.CommandReads().UserByReferralCode(ctx, *req.ReferralCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrReferralCodeNotFound
			}
			return nil, err
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Users().Create(ctx, tx.DB(), newUser); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}

		if referrer == nil {
			return nil
		}

		ref, derr := referral.NewReferral(referrer.ID(), newUser.ID(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		if _, derr = tx.Referrals().CreateReferral(ctx, tx.DB(), ref); derr != nil {
			return derr
		}

		reward := referral.NewReward(referrer.ID(), ref.ID(), uc.clock.Now())
		_, derr = tx.Referrals().CreateReward(ctx, tx.DB(), reward)
		return derr
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.jwtService.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &AuthResult{Token: token, UserID: newUser.ID(), Role: newUser.Role()}, nil
}

func (uc *authUseCaseImpl) Login(ctx context.Context, creds user.Credentials) (*AuthResult, error) {
	u, err := uc.uow.CommandReads().UserByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), creds.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, ErrTokenGeneration
	}

	// Login still succeeds if the timestamp write fails.
	if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID())
	}); err != nil {
		slog.Warn("failed to record last login", "user_id", u.ID().String(), "error", err.Error())
	}

	return &AuthResult{Token: token, UserID: u.ID(), Role: u.Role()}, nil
}

func (uc *authUseCaseImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFoundWrite
			}
			return err
		}

		if err := u.UpdateProfile(req.Username, req.Phone, req.Address, req.City, req.State, req.Country, req.ZipCode, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Users().UpdateProfile(ctx, tx.DB(), u)
	})
}

func (uc *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := uc.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
