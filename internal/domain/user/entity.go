package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User entity shared by the portal and the admin surface; the role field
// separates customers from back-office accounts.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	username     string
	phone        string
	address      *string
	city         *string
	state        *string
	country      *string
	zipCode      *string
	referralCode string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, username, phone string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if strings.TrimSpace(phone) == "" {
		return nil, ErrEmptyPhone
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		username:     username,
		phone:        phone,
		referralCode: NewReferralCode(),
		role:         role,
		isActive:     true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, username, phone string,
	address, city, state, country, zipCode *string,
	referralCode string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		username:     username,
		phone:        phone,
		address:      address,
		city:         city,
		state:        state,
		country:      country,
		zipCode:      zipCode,
		referralCode: referralCode,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateProfile overwrites only the fields the caller supplied.
func (u *User) UpdateProfile(username, phone *string, address, city, state, country, zipCode *string, now time.Time) error {
	if username != nil {
		trimmed := strings.TrimSpace(*username)
		if trimmed == "" {
			return ErrEmptyUsername
		}
		u.username = trimmed
	}
	if phone != nil {
		if strings.TrimSpace(*phone) == "" {
			return ErrEmptyPhone
		}
		u.phone = *phone
	}
	if address != nil {
		u.address = address
	}
	if city != nil {
		u.city = city
	}
	if state != nil {
		u.state = state
	}
	if country != nil {
		u.country = country
	}
	if zipCode != nil {
		u.zipCode = zipCode
	}
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Username() string      { return u.username }
func (u *User) Phone() string         { return u.phone }
func (u *User) Address() *string      { return u.address }
func (u *User) City() *string         { return u.city }
func (u *User) State() *string        { return u.state }
func (u *User) Country() *string      { return u.country }
func (u *User) ZipCode() *string      { return u.zipCode }
func (u *User) ReferralCode() string  { return u.referralCode }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
