package shared

import (
	"context"

	"github.com/shopspring/decimal"
)

// StripeGateway wraps the card-payment provider.
type StripeGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (customerID string, err error)
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

// ZainCashGateway wraps the mobile-wallet provider used for JOD payments.
type ZainCashGateway interface {
	InitiatePayment(ctx context.Context, req ZainCashPaymentRequest) (*ZainCashPaymentResult, error)
	VerifyPayment(ctx context.Context, transactionID string) (*ZainCashVerification, error)
}

type ZainCashPaymentRequest struct {
	Amount         decimal.Decimal
	OrderID        string
	ServiceType    string
	RedirectURL    string
	CustomerName   string
	CustomerEmail  string
	CustomerMobile string
	Language       string
}

type ZainCashPaymentResult struct {
	TransactionID string
	PaymentURL    string
}

type ZainCashVerification struct {
	TransactionID string
	Status        string
	Amount        decimal.Decimal
}
