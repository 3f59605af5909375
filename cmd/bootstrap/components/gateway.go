package components

import (
	"aquaflow/internal/infra/payment"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewStripeGateway,
		NewZainCashGateway,
	),
)

func NewStripeGateway(cfg config.Config) shared.StripeGateway {
	return payment.NewStripeClient(cfg.Stripe)
}

func NewZainCashGateway(cfg config.Config) shared.ZainCashGateway {
	return payment.NewZainCashClient(cfg.ZainCash)
}
