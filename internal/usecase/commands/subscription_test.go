//go:build unit

package commands_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStripeGateway struct {
	customerID   string
	clientSecret string
	intentErr    error
}

func (g *stubStripeGateway) CreateCustomer(_ context.Context, _, _ string) (string, error) {
	return g.customerID, nil
}

func (g *stubStripeGateway) CreatePaymentIntent(_ context.Context, _ int64, _ string) (string, error) {
	if g.intentErr != nil {
		return "", g.intentErr
	}
	return g.clientSecret, nil
}

func newSubscriptionUseCase(uow *fakeUoW, stripe *stubStripeGateway, clk clock.Clock) commands.SubscriptionCommands {
	cfg := config.StripeConfig{SubscriptionAmount: 2500, Currency: "usd"}
	return commands.NewSubscriptionUseCase(uow, stripe, cfg, clk)
}

func remindersByType(uow *fakeUoW) []*reminder.Reminder {
	var rems []*reminder.Reminder
	for _, rem := range uow.reminders {
		rems = append(rems, rem)
	}
	sort.Slice(rems, func(i, j int) bool { return rems[i].Type() < rems[j].Type() })
	return rems
}

func TestCreateSubscription_SchedulesReminders(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	uc := newSubscriptionUseCase(uow, &stubStripeGateway{}, clk)
	userID := uuid.New()

	result, err := uc.Create(ctx, userID, commands.CreateSubscriptionRequest{})
	require.NoError(t, err)

	sub, ok := uow.subscriptions[userID]
	require.True(t, ok)
	assert.Equal(t, result.SubscriptionID, sub.ID())
	assert.Equal(t, subscription.StatusActive, sub.Status())

	rems := remindersByType(uow)
	require.Len(t, rems, 2)

	maintenance, payment := rems[0], rems[1]
	assert.Equal(t, reminder.TypeMaintenance, maintenance.Type())
	assert.Equal(t, "Monthly Service Reminder", maintenance.Title())
	assert.True(t, maintenance.ScheduledDate().Equal(time.Date(2025, 6, 28, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, reminder.StatusPending, maintenance.Status())

	assert.Equal(t, reminder.TypePayment, payment.Type())
	assert.Equal(t, "Monthly Subscription Payment", payment.Title())
	assert.True(t, payment.ScheduledDate().Equal(time.Date(2025, 6, 26, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, reminder.StatusPending, payment.Status())
}

func TestCreateSubscription_AlreadySubscribed(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Now())
	uc := newSubscriptionUseCase(uow, &stubStripeGateway{}, clk)
	userID := uuid.New()

	_, err := uc.Create(ctx, userID, commands.CreateSubscriptionRequest{})
	require.NoError(t, err)

	_, err = uc.Create(ctx, userID, commands.CreateSubscriptionRequest{})
	assert.ErrorIs(t, err, commands.ErrSubscriptionExists)
	assert.Len(t, uow.reminders, 2, "the failed retry must not schedule more reminders")
}

func TestCreateSubscription_ReminderFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	uow.reminderCreateErr = func(rem *reminder.Reminder) error {
		if rem.Type() == reminder.TypePayment {
			return errs.New("reminder insert failed")
		}
		return nil
	}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	uc := newSubscriptionUseCase(uow, &stubStripeGateway{}, clk)
	userID := uuid.New()

	_, err := uc.Create(ctx, userID, commands.CreateSubscriptionRequest{})

	require.NoError(t, err, "reminder scheduling is best effort")
	assert.Contains(t, uow.subscriptions, userID)

	rems := remindersByType(uow)
	require.Len(t, rems, 1)
	assert.Equal(t, reminder.TypeMaintenance, rems[0].Type())
}

func TestSubscribe_AttachesStripeRefs(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	stripe := &stubStripeGateway{customerID: "cus_test123", clientSecret: "pi_secret_abc"}
	uc := newSubscriptionUseCase(uow, stripe, clk)

	u := registerTestUser(t, uow, clk, "subscriber@example.com")

	// Existing subscription gets the provider references attached.
	_, err := uc.Create(ctx, u.ID(), commands.CreateSubscriptionRequest{})
	require.NoError(t, err)

	result, err := uc.Subscribe(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_abc", result.ClientSecret)
	assert.NotEmpty(t, result.SubscriptionRef)

	sub := uow.subscriptions[u.ID()]
	require.NotNil(t, sub.StripeCustomerID())
	assert.Equal(t, "cus_test123", *sub.StripeCustomerID())
	assert.Equal(t, subscription.StatusActive, sub.Status())
	assert.Len(t, uow.reminders, 2, "attaching to an existing subscription schedules nothing new")
}

func TestSubscribe_CreatesPendingSubscription(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	stripe := &stubStripeGateway{customerID: "cus_test123", clientSecret: "pi_secret_abc"}
	uc := newSubscriptionUseCase(uow, stripe, clk)

	u := registerTestUser(t, uow, clk, "first-timer@example.com")

	_, err := uc.Subscribe(ctx, u.ID())
	require.NoError(t, err)

	sub, ok := uow.subscriptions[u.ID()]
	require.True(t, ok, "subscribe without a subscription creates one")
	assert.Equal(t, subscription.StatusPending, sub.Status(), "payment has not settled yet")
	assert.Len(t, uow.reminders, 2)
}

func TestSubscribe_UnknownUser(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	uc := newSubscriptionUseCase(uow, &stubStripeGateway{}, clock.NewMockClock(time.Now()))

	_, err := uc.Subscribe(ctx, uuid.New())
	assert.ErrorIs(t, err, commands.ErrUserNotFoundWrite)
}
