package components

import (
	"aquaflow/internal/handler"
	"aquaflow/internal/handler/api"
	"aquaflow/internal/handler/middleware"
	"aquaflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSubscriptionHandler,
		api.NewInstallationHandler,
		api.NewUsageHandler,
		api.NewEcoImpactHandler,
		api.NewReminderHandler,
		api.NewSupportHandler,
		api.NewReferralHandler,
		api.NewPaymentHandler,
		NewHandlers,
		fx.Annotate(
			NewTokenValidator,
			fx.As(new(middleware.TokenValidator)),
		),
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	subscription *api.SubscriptionHandler,
	installation *api.InstallationHandler,
	usage *api.UsageHandler,
	ecoImpact *api.EcoImpactHandler,
	reminder *api.ReminderHandler,
	support *api.SupportHandler,
	referral *api.ReferralHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Subscription: subscription,
		Installation: installation,
		Usage:        usage,
		EcoImpact:    ecoImpact,
		Reminder:     reminder,
		Support:      support,
		Referral:     referral,
		Payment:      payment,
	}
}

func NewTokenValidator(cmds commands.AuthCommands) commands.AuthCommands {
	return cmds
}
