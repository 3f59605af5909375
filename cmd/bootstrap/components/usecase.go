package components

import (
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/config"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"
	"aquaflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewEcoImpactUseCase,
		commands.NewUsageUseCase,
		NewSubscriptionUseCase,
		commands.NewInstallationUseCase,
		commands.NewReminderUseCase,
		commands.NewSupportUseCase,
		commands.NewReferralUseCase,
		commands.NewPaymentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSubscriptionQueries,
		queries.NewInstallationQueries,
		queries.NewReminderQueries,
		queries.NewUsageQueries,
		queries.NewEcoImpactQueries,
		queries.NewSupportTicketQueries,
		queries.NewReferralQueries,
	),
)

func NewSubscriptionUseCase(uow shared.UnitOfWork, stripe shared.StripeGateway, cfg config.Config, clk clock.Clock) commands.SubscriptionCommands {
	return commands.NewSubscriptionUseCase(uow, stripe, cfg.Stripe, clk)
}
