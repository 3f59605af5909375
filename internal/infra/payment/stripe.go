package payment

import (
	"context"

	"aquaflow/internal/pkg/config"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

type StripeClient struct {
	api *client.API
}

func NewStripeClient(cfg config.StripeConfig) shared.StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeClient{api: api}
}

func (s *StripeClient) CreateCustomer(_ context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}

	cust, err := s.api.Customers.New(params)
	if err != nil {
		return "", errs.Wrap(err, "failed to create stripe customer")
	}
	return cust.ID, nil
}

func (s *StripeClient) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", errs.Wrap(err, "failed to create payment intent")
	}
	return intent.ClientSecret, nil
}
