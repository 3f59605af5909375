package commands

import (
	"context"
	"fmt"
	"log/slog"

	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/infra"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentAmount  = errs.New("payment amount must be a positive number")
	ErrPaymentNotFound       = errs.New("payment transaction not found")
	ErrPaymentVerifyRejected = errs.New("payment verification failed")
)

const (
	paymentStatusPending   = "pending"
	paymentStatusCompleted = "completed"
	paymentStatusFailed    = "failed"

	gatewayZainCash = "zaincash"
)

type CreateIntentResult struct {
	ClientSecret string
}

type ZainCashInitiateRequest struct {
	Amount      string
	ServiceType string
	Language    string
}

type ZainCashInitiateResult struct {
	TransactionID string
	PaymentURL    string
}

type ZainCashVerifyResult struct {
	TransactionID string
	Status        string
	Amount        decimal.Decimal
}

type PaymentCommands interface {
	// CreateIntent opens a card payment for the fixed monthly amount.
	CreateIntent(ctx context.Context) (*CreateIntentResult, error)
	ZainCashInitiate(ctx context.Context, userID uuid.UUID, req ZainCashInitiateRequest) (*ZainCashInitiateResult, error)
	ZainCashVerify(ctx context.Context, userID uuid.UUID, transactionID string) (*ZainCashVerifyResult, error)
	// ZainCashCallback records the gateway's asynchronous status update.
	ZainCashCallback(ctx context.Context, transactionID, status string) error
}

type paymentUseCaseImpl struct {
	uow      shared.UnitOfWork
	stripe   shared.StripeGateway
	zaincash shared.ZainCashGateway
	cfg      config.Config
	clock    clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, stripe shared.StripeGateway, zaincash shared.ZainCashGateway, cfg config.Config, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, stripe: stripe, zaincash: zaincash, cfg: cfg, clock: clk}
}

func (uc *paymentUseCaseImpl) CreateIntent(ctx context.Context) (*CreateIntentResult, error) {
	clientSecret, err := uc.stripe.CreatePaymentIntent(ctx, uc.cfg.Stripe.SubscriptionAmount, uc.cfg.Stripe.Currency)
	if err != nil {
		return nil, err
	}
	return &CreateIntentResult{ClientSecret: clientSecret}, nil
}

func (uc *paymentUseCaseImpl) ZainCashInitiate(ctx context.Context, userID uuid.UUID, req ZainCashInitiateRequest) (*ZainCashInitiateResult, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, ErrInvalidPaymentAmount
	}

	u, err := uc.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFoundWrite
		}
		return nil, err
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "subscription"
	}

	orderID := fmt.Sprintf("order_%d_%s", uc.clock.Now().UnixMilli(), userID)

	result, err := uc.zaincash.InitiatePayment(ctx, shared.ZainCashPaymentRequest{
		Amount:         amount,
		OrderID:        orderID,
		ServiceType:    serviceType,
		RedirectURL:    uc.cfg.Server.BaseURL + "/payment-result",
		CustomerName:   u.Username(),
		CustomerEmail:  u.Email().Value(),
		CustomerMobile: u.Phone(),
		Language:       req.Language,
	})
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Payments().Create(ctx, tx.DB(), &shared.PaymentSnapshot{
			ID:            uuid.New(),
			UserID:        userID,
			TransactionID: result.TransactionID,
			Amount:        amount,
			Currency:      "jod",
			Gateway:       gatewayZainCash,
			Status:        paymentStatusPending,
		})
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &ZainCashInitiateResult{TransactionID: result.TransactionID, PaymentURL: result.PaymentURL}, nil
}

func (uc *paymentUseCaseImpl) ZainCashVerify(ctx context.Context, userID uuid.UUID, transactionID string) (*ZainCashVerifyResult, error) {
	record, err := uc.uow.CommandReads().PaymentByTransactionID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrPaymentNotFound
	}

	verification, err := uc.zaincash.VerifyPayment(ctx, transactionID)
	if err != nil {
		return nil, ErrPaymentVerifyRejected
	}

	if verification.Status == paymentStatusCompleted {
		if err := uc.settle(ctx, record.UserID, transactionID); err != nil {
			return nil, err
		}
	}

	return &ZainCashVerifyResult{
		TransactionID: verification.TransactionID,
		Status:        verification.Status,
		Amount:        verification.Amount,
	}, nil
}

// settle marks the transaction completed and activates the payer's
// subscription when one is waiting on payment.
func (uc *paymentUseCaseImpl) settle(ctx context.Context, userID uuid.UUID, transactionID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), transactionID, paymentStatusCompleted); err != nil {
			return err
		}

		sub, err := tx.Reads().SubscriptionByUserID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if sub.Status() != subscription.StatusPending {
			return nil
		}
		return tx.Subscriptions().UpdateStatus(ctx, tx.DB(), sub.ID(), subscription.StatusActive)
	})
}

func (uc *paymentUseCaseImpl) ZainCashCallback(ctx context.Context, transactionID, status string) error {
	slog.Info("zaincash callback received", "transaction_id", transactionID, "status", status)

	if transactionID == "" {
		return nil
	}

	switch status {
	case paymentStatusCompleted:
		record, err := uc.uow.CommandReads().PaymentByTransactionID(ctx, transactionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		return uc.settle(ctx, record.UserID, transactionID)
	case paymentStatusFailed:
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			err := tx.Payments().UpdateStatus(ctx, tx.DB(), transactionID, paymentStatusFailed)
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		})
	default:
		return nil
	}
}
