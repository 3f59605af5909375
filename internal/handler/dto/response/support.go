package response

import (
	"aquaflow/internal/domain/referral"
	"aquaflow/internal/usecase/queries"
)

type TicketResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	ImageURL    *string `json:"image_url,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

func FromTicketList(items []*queries.TicketView) []*TicketResponse {
	res := make([]*TicketResponse, len(items))
	for i, it := range items {
		res[i] = &TicketResponse{
			ID:          it.ID.String(),
			UserID:      it.UserID.String(),
			Title:       it.Title,
			Description: it.Description,
			Status:      it.Status,
			ImageURL:    it.ImageURL,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}

type CreateTicketResponse struct {
	TicketID string `json:"ticket_id"`
}

type ReferralSummaryResponse struct {
	ReferralCode string              `json:"referral_code"`
	Referrals    []*ReferralResponse `json:"referrals"`
	Rewards      []*RewardResponse   `json:"rewards"`
}

type ReferralResponse struct {
	ID               string `json:"id"`
	ReferredUsername string `json:"referred_username"`
	ReferredEmail    string `json:"referred_email"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"created_at"`
}

type RewardResponse struct {
	ID             string `json:"id"`
	ReferralID     string `json:"referral_id"`
	DiscountAmount int    `json:"discount_amount"`
	Status         string `json:"status"`
	ExpiresAt      int64  `json:"expires_at"`
	CreatedAt      int64  `json:"created_at"`
}

func FromReferralSummary(s *queries.ReferralSummary) *ReferralSummaryResponse {
	referrals := make([]*ReferralResponse, len(s.Referrals))
	for i, r := range s.Referrals {
		referrals[i] = &ReferralResponse{
			ID:               r.ID.String(),
			ReferredUsername: r.ReferredUsername,
			ReferredEmail:    r.ReferredEmail,
			Status:           r.Status,
			CreatedAt:        r.CreatedAt.Unix(),
		}
	}

	return &ReferralSummaryResponse{
		ReferralCode: s.ReferralCode,
		Referrals:    referrals,
		Rewards:      FromRewardViews(s.Rewards),
	}
}

func FromRewardViews(items []*queries.RewardView) []*RewardResponse {
	rewards := make([]*RewardResponse, len(items))
	for i, w := range items {
		rewards[i] = &RewardResponse{
			ID:             w.ID.String(),
			ReferralID:     w.ReferralID.String(),
			DiscountAmount: w.DiscountAmount,
			Status:         w.Status,
			ExpiresAt:      w.ExpiresAt.Unix(),
			CreatedAt:      w.CreatedAt.Unix(),
		}
	}
	return rewards
}

type RedeemReferralResponse struct {
	ReferralID string          `json:"referral_id"`
	Reward     *RewardResponse `json:"reward"`
}

func FromRedeemedReferral(ref *referral.Referral, reward *referral.Reward) *RedeemReferralResponse {
	return &RedeemReferralResponse{
		ReferralID: ref.ID().String(),
		Reward: &RewardResponse{
			ID:             reward.ID().String(),
			ReferralID:     reward.ReferralID().String(),
			DiscountAmount: reward.DiscountAmount(),
			Status:         string(reward.Status()),
			ExpiresAt:      reward.ExpiresAt().Unix(),
			CreatedAt:      reward.CreatedAt().Unix(),
		},
	}
}
