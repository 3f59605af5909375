package response

import (
	"aquaflow/internal/usecase/queries"
)

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Phone        string  `json:"phone"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
	ReferralCode string  `json:"referral_code"`
	Role         string  `json:"role"`
	LastLogin    *int64  `json:"last_login,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    int64   `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	resp := &UserResponse{
		ID:           v.ID.String(),
		Email:        v.Email,
		Username:     v.Username,
		Phone:        v.Phone,
		Address:      v.Address,
		City:         v.City,
		State:        v.State,
		Country:      v.Country,
		ZipCode:      v.ZipCode,
		ReferralCode: v.ReferralCode,
		Role:         v.Role,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt.Unix(),
	}
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		resp.LastLogin = &ts
	}
	return resp
}
