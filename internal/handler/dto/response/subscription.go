package response

import (
	"aquaflow/internal/usecase/queries"
)

type SubscriptionResponse struct {
	ID                   string  `json:"id"`
	UserID               string  `json:"user_id"`
	Status               string  `json:"status"`
	StartDate            int64   `json:"start_date"`
	NextBillingDate      int64   `json:"next_billing_date"`
	StripeCustomerID     *string `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string `json:"stripe_subscription_id,omitempty"`
	CreatedAt            int64   `json:"created_at"`
}

func FromSubscriptionView(v *queries.SubscriptionView) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:                   v.ID.String(),
		UserID:               v.UserID.String(),
		Status:               v.Status,
		StartDate:            v.StartDate.Unix(),
		NextBillingDate:      v.NextBillingDate.Unix(),
		StripeCustomerID:     v.StripeCustomerID,
		StripeSubscriptionID: v.StripeSubscriptionID,
		CreatedAt:            v.CreatedAt.Unix(),
	}
}

type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscription_id"`
}

type SubscribeResponse struct {
	SubscriptionID string `json:"subscription_id"`
	ClientSecret   string `json:"client_secret"`
}

type InstallationResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	ScheduledDate int64   `json:"scheduled_date"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     int64   `json:"created_at"`
}

func FromInstallationList(items []*queries.InstallationView) []*InstallationResponse {
	res := make([]*InstallationResponse, len(items))
	for i, it := range items {
		res[i] = &InstallationResponse{
			ID:            it.ID.String(),
			UserID:        it.UserID.String(),
			ScheduledDate: it.ScheduledDate.Unix(),
			Status:        it.Status,
			Notes:         it.Notes,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	return res
}

type ScheduleInstallationResponse struct {
	InstallationID string `json:"installation_id"`
}
