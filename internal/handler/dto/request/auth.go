package request

import (
	"aquaflow/internal/domain/user"
	"aquaflow/internal/usecase/commands"
)

type RegisterRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Username     string  `json:"username" binding:"required,max=64"`
	Phone        string  `json:"phone" binding:"required,max=32"`
	ReferralCode *string `json:"referral_code" binding:"omitempty,len=8"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		Email:        r.Email,
		Password:     r.Password,
		Username:     r.Username,
		Phone:        r.Phone,
		ReferralCode: r.ReferralCode,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, pass), nil
}

type UpdateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,max=64"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	Address  *string `json:"address" binding:"omitempty,max=256"`
	City     *string `json:"city" binding:"omitempty,max=128"`
	State    *string `json:"state" binding:"omitempty,max=128"`
	Country  *string `json:"country" binding:"omitempty,max=128"`
	ZipCode  *string `json:"zip_code" binding:"omitempty,max=32"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		Username: r.Username,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		Country:  r.Country,
		ZipCode:  r.ZipCode,
	}
}
