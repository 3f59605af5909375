package commands

import (
	"context"
	"log/slog"
	"time"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSubscriptionExists = errs.New("user already has a subscription")

type CreateSubscriptionRequest struct {
	StartDate *time.Time
}

type CreateSubscriptionResult struct {
	SubscriptionID uuid.UUID
}

type SubscribeResult struct {
	SubscriptionRef string
	ClientSecret    string
}

type SubscriptionCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateSubscriptionRequest) (*CreateSubscriptionResult, error)
	// Subscribe registers the user with the card provider and attaches
	// the provider references to the subscription, creating it first if
	// the user has none.
	Subscribe(ctx context.Context, userID uuid.UUID) (*SubscribeResult, error)
}

type subscriptionUseCaseImpl struct {
	uow    shared.UnitOfWork
	stripe shared.StripeGateway
	cfg    config.StripeConfig
	clock  clock.Clock
}

func NewSubscriptionUseCase(uow shared.UnitOfWork, stripe shared.StripeGateway, cfg config.StripeConfig, clk clock.Clock) SubscriptionCommands {
	return &subscriptionUseCaseImpl{uow: uow, stripe: stripe, cfg: cfg, clock: clk}
}

func (uc *subscriptionUseCaseImpl) Create(ctx context.Context, userID uuid.UUID, req CreateSubscriptionRequest) (*CreateSubscriptionResult, error) {
	now := uc.clock.Now()
	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}

	sub := subscription.NewSubscription(userID, subscription.StatusActive, start, now)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Subscriptions().Create(ctx, tx.DB(), sub)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return ErrSubscriptionExists
		}
		return derr
	})
	if err != nil {
		return nil, err
	}

	uc.scheduleReminders(ctx, userID, now)

	return &CreateSubscriptionResult{SubscriptionID: sub.ID()}, nil
}

// scheduleReminders is best effort: the subscription is already
// committed, and a missing reminder must not undo it. Each insert runs
// in its own transaction so one failure cannot take down the others.
func (uc *subscriptionUseCaseImpl) scheduleReminders(ctx context.Context, userID uuid.UUID, startRef time.Time) {
	for _, rem := range reminder.ForSubscription(userID, startRef, uc.clock.Now()) {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, derr := tx.Reminders().Create(ctx, tx.DB(), rem)
			return derr
		})
		if err != nil {
			slog.Warn("failed to schedule subscription reminder",
				"user_id", userID.String(),
				"type", rem.Type().String(),
				"error", err.Error())
		}
	}
}

func (uc *subscriptionUseCaseImpl) Subscribe(ctx context.Context, userID uuid.UUID) (*SubscribeResult, error) {
	u, err := uc.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFoundWrite
		}
		return nil, err
	}

	customerID, err := uc.stripe.CreateCustomer(ctx, u.Email().Value(), u.Username())
	if err != nil {
		return nil, err
	}

	clientSecret, err := uc.stripe.CreatePaymentIntent(ctx, uc.cfg.SubscriptionAmount, uc.cfg.Currency)
	if err != nil {
		return nil, err
	}

	subscriptionRef := "sub_" + uuid.NewString()
	now := uc.clock.Now()

	var created bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().SubscriptionByUserID(ctx, userID)
		switch {
		case derr == nil:
			existing.AttachStripe(customerID, subscriptionRef)
			return tx.Subscriptions().UpdateStripeRefs(ctx, tx.DB(), existing)
		case infra.IsKind(derr, infra.KindNotFound):
			sub := subscription.NewSubscription(userID, subscription.StatusPending, now, now)
			sub.AttachStripe(customerID, subscriptionRef)
			if _, derr = tx.Subscriptions().Create(ctx, tx.DB(), sub); derr != nil {
				return derr
			}
			created = true
			return nil
		default:
			return derr
		}
	})
	if err != nil {
		return nil, err
	}

	if created {
		uc.scheduleReminders(ctx, userID, now)
	}

	return &SubscribeResult{SubscriptionRef: subscriptionRef, ClientSecret: clientSecret}, nil
}
