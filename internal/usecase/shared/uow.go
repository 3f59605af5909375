package shared

import (
	"context"
	"time"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/domain/installation"
	"aquaflow/internal/domain/referral"
	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/domain/support"
	"aquaflow/internal/domain/usage"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, ex db.Executor) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Subscriptions() SubscriptionRepository
	Installations() InstallationRepository
	Reminders() ReminderRepository
	Usage() UsageRepository
	Impact() ImpactRepository
	SupportTickets() SupportTicketRepository
	Referrals() ReferralRepository
	Payments() PaymentRepository
	Reads() CommandReads
	DB() db.Executor
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByReferralCode(ctx context.Context, code string) (*user.User, error)
	SubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*subscription.Subscription, error)
	InstallationByID(ctx context.Context, id uuid.UUID) (*installation.Installation, error)
	ReminderByID(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error)
	PaymentByTransactionID(ctx context.Context, transactionID string) (*PaymentSnapshot, error)
}

// Minimal snapshot for command read operations
type PaymentSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Gateway       string
	Status        string
	CreatedAt     time.Time
}

type UserRepository interface {
	Create(ctx context.Context, ex db.Executor, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, ex db.Executor, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, ex db.Executor, u *user.User) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, ex db.Executor, sub *subscription.Subscription) (uuid.UUID, error)
	UpdateStripeRefs(ctx context.Context, ex db.Executor, sub *subscription.Subscription) error
	UpdateStatus(ctx context.Context, ex db.Executor, subID uuid.UUID, status subscription.Status) error
}

type InstallationRepository interface {
	Create(ctx context.Context, ex db.Executor, inst *installation.Installation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, ex db.Executor, instID uuid.UUID, status installation.Status) error
}

type ReminderRepository interface {
	Create(ctx context.Context, ex db.Executor, rem *reminder.Reminder) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, ex db.Executor, rem *reminder.Reminder) error
}

type UsageRepository interface {
	Create(ctx context.Context, ex db.Executor, entry *usage.Entry) (uuid.UUID, error)
	FindAllByUserID(ctx context.Context, ex db.Executor, userID uuid.UUID) ([]*usage.Entry, error)
}

type ImpactRepository interface {
	// AcquireUserLock serializes snapshot recomputation per user for the
	// lifetime of the surrounding transaction.
	AcquireUserLock(ctx context.Context, ex db.Executor, userID uuid.UUID) error
	Upsert(ctx context.Context, ex db.Executor, userID uuid.UUID, metrics impact.Metrics, calculatedAt time.Time) (*impact.Snapshot, error)
}

type SupportTicketRepository interface {
	Create(ctx context.Context, ex db.Executor, ticket *support.Ticket) (uuid.UUID, error)
}

type ReferralRepository interface {
	CreateReferral(ctx context.Context, ex db.Executor, ref *referral.Referral) (uuid.UUID, error)
	CreateReward(ctx context.Context, ex db.Executor, rew *referral.Reward) (uuid.UUID, error)
	ExistsForReferred(ctx context.Context, ex db.Executor, referredID uuid.UUID) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, ex db.Executor, p *PaymentSnapshot) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, ex db.Executor, transactionID, status string) error
}
