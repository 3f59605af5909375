package referral

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSelfReferral = errors.New("cannot use your own referral code")

// Referral reward granted to the referrer on a completed redemption.
const (
	RewardDiscountJOD  = 25
	RewardValidityDays = 30
)

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

type RewardStatus string

const (
	RewardActive  RewardStatus = "active"
	RewardUsed    RewardStatus = "used"
	RewardExpired RewardStatus = "expired"
)

type Referral struct {
	id         uuid.UUID
	referrerID uuid.UUID
	referredID uuid.UUID
	status     ReferralStatus
	createdAt  time.Time
}

// NewReferral records a completed redemption of referrerID's code by referredID.
func NewReferral(referrerID, referredID uuid.UUID, now time.Time) (*Referral, error) {
	if referrerID == referredID {
		return nil, ErrSelfReferral
	}
	return &Referral{
		id:         uuid.New(),
		referrerID: referrerID,
		referredID: referredID,
		status:     ReferralCompleted,
		createdAt:  now,
	}, nil
}

func ReconstructReferral(id, referrerID, referredID uuid.UUID, status ReferralStatus, createdAt time.Time) *Referral {
	return &Referral{
		id:         id,
		referrerID: referrerID,
		referredID: referredID,
		status:     status,
		createdAt:  createdAt,
	}
}

func (r *Referral) ID() uuid.UUID          { return r.id }
func (r *Referral) ReferrerID() uuid.UUID  { return r.referrerID }
func (r *Referral) ReferredID() uuid.UUID  { return r.referredID }
func (r *Referral) Status() ReferralStatus { return r.status }
func (r *Referral) CreatedAt() time.Time   { return r.createdAt }

type Reward struct {
	id             uuid.UUID
	userID         uuid.UUID
	referralID     uuid.UUID
	discountAmount int
	status         RewardStatus
	expiresAt      time.Time
	createdAt      time.Time
}

// NewReward grants the standard referral discount to the referrer.
func NewReward(userID, referralID uuid.UUID, now time.Time) *Reward {
	return &Reward{
		id:             uuid.New(),
		userID:         userID,
		referralID:     referralID,
		discountAmount: RewardDiscountJOD,
		status:         RewardActive,
		expiresAt:      now.AddDate(0, 0, RewardValidityDays),
		createdAt:      now,
	}
}

func ReconstructReward(id, userID, referralID uuid.UUID, discountAmount int, status RewardStatus, expiresAt, createdAt time.Time) *Reward {
	return &Reward{
		id:             id,
		userID:         userID,
		referralID:     referralID,
		discountAmount: discountAmount,
		status:         status,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
	}
}

func (w *Reward) ID() uuid.UUID         { return w.id }
func (w *Reward) UserID() uuid.UUID     { return w.userID }
func (w *Reward) ReferralID() uuid.UUID { return w.referralID }
func (w *Reward) DiscountAmount() int   { return w.discountAmount }
func (w *Reward) Status() RewardStatus { return w.status }
func (w *Reward) ExpiresAt() time.Time { return w.expiresAt }
func (w *Reward) CreatedAt() time.Time { return w.createdAt }
