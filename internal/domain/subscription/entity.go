package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid subscription status")

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusActive, StatusPending, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Subscription is the single monthly plan a user can hold. Billing
// follows a calendar month from startDate.
type Subscription struct {
	id                   uuid.UUID
	userID               uuid.UUID
	status               Status
	startDate            time.Time
	nextBillingDate      time.Time
	stripeCustomerID     *string
	stripeSubscriptionID *string
	createdAt            time.Time
}

func NewSubscription(userID uuid.UUID, status Status, startDate time.Time, now time.Time) *Subscription {
	return &Subscription{
		id:              uuid.New(),
		userID:          userID,
		status:          status,
		startDate:       startDate,
		nextBillingDate: startDate.AddDate(0, 1, 0),
		createdAt:       now,
	}
}

func ReconstructSubscription(id, userID uuid.UUID, status Status, startDate, nextBillingDate time.Time, stripeCustomerID, stripeSubscriptionID *string, createdAt time.Time) *Subscription {
	return &Subscription{
		id:                   id,
		userID:               userID,
		status:               status,
		startDate:            startDate,
		nextBillingDate:      nextBillingDate,
		stripeCustomerID:     stripeCustomerID,
		stripeSubscriptionID: stripeSubscriptionID,
		createdAt:            createdAt,
	}
}

func (s *Subscription) AttachStripe(customerID, subscriptionID string) {
	s.stripeCustomerID = &customerID
	s.stripeSubscriptionID = &subscriptionID
}

func (s *Subscription) Activate() { s.status = StatusActive }

func (s *Subscription) ID() uuid.UUID                 { return s.id }
func (s *Subscription) UserID() uuid.UUID             { return s.userID }
func (s *Subscription) Status() Status                { return s.status }
func (s *Subscription) StartDate() time.Time          { return s.startDate }
func (s *Subscription) NextBillingDate() time.Time    { return s.nextBillingDate }
func (s *Subscription) StripeCustomerID() *string     { return s.stripeCustomerID }
func (s *Subscription) StripeSubscriptionID() *string { return s.stripeSubscriptionID }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
