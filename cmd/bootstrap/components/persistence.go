package components

import (
	"aquaflow/internal/infra/db"
	"aquaflow/internal/infra/readstore"
	"aquaflow/internal/infra/uow"
	"aquaflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewExecutor,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		fx.Annotate(
			readstore.NewInstallationReadStore,
			fx.As(new(queries.InstallationReadStore)),
		),
		fx.Annotate(
			readstore.NewReminderReadStore,
			fx.As(new(queries.ReminderReadStore)),
		),
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(queries.UsageReadStore)),
		),
		fx.Annotate(
			readstore.NewEcoImpactReadStore,
			fx.As(new(queries.EcoImpactReadStore)),
		),
		fx.Annotate(
			readstore.NewSupportTicketReadStore,
			fx.As(new(queries.SupportTicketReadStore)),
		),
		fx.Annotate(
			readstore.NewReferralReadStore,
			fx.As(new(queries.ReferralReadStore)),
		),
	),
)

// NewExecutor exposes the pool as the plain query surface read
// stores run on outside a transaction.
func NewExecutor(pool *pgxpool.Pool) db.Executor {
	return pool
}
