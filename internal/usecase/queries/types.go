package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized profile data
type UserView struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Phone        string     `json:"phone"`
	Address      *string    `json:"address,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	Country      *string    `json:"country,omitempty"`
	ZipCode      *string    `json:"zip_code,omitempty"`
	ReferralCode string     `json:"referral_code"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

type SubscriptionView struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	Status               string    `json:"status"`
	StartDate            time.Time `json:"start_date"`
	NextBillingDate      time.Time `json:"next_billing_date"`
	StripeCustomerID     *string   `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string   `json:"stripe_subscription_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type InstallationView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReminderView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// PendingReminderView joins in contact details for the dispatch poller.
type PendingReminderView struct {
	ReminderView
	UserEmail    string `json:"user_email"`
	UserUsername string `json:"user_username"`
	UserPhone    string `json:"user_phone"`
}

type UsageEntryView struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       time.Time `json:"date"`
	LitresUsed string    `json:"litres_used"`
	CreatedAt  time.Time `json:"created_at"`
}

type EcoImpactView struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	PlasticBottlesSaved int64     `json:"plastic_bottles_saved"`
	CO2Reduced          string    `json:"co2_reduced"`
	WaterSaved          string    `json:"water_saved"`
	LastCalculated      time.Time `json:"last_calculated"`
}

type TicketView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReferralView struct {
	ID               uuid.UUID `json:"id"`
	ReferredUsername string    `json:"referred_username"`
	ReferredEmail    string    `json:"referred_email"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type RewardView struct {
	ID             uuid.UUID `json:"id"`
	ReferralID     uuid.UUID `json:"referral_id"`
	DiscountAmount int       `json:"discount_amount"`
	Status         string    `json:"status"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}
