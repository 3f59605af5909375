package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"aquaflow/internal/infra/db"
	"aquaflow/internal/infra/repository"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"aquaflow/internal/domain/installation"
	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/domain/user"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, ex db.Executor) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{ex: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{ex: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	ex db.Executor

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	subscriptionRepo shared.SubscriptionRepository
	installationRepo shared.InstallationRepository
	reminderRepo     shared.ReminderRepository
	usageRepo        shared.UsageRepository
	impactRepo       shared.ImpactRepository
	ticketRepo       shared.SupportTicketRepository
	referralRepo     shared.ReferralRepository
	paymentRepo      shared.PaymentRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.Executor {
	return t.ex
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository()
	}
	return t.subscriptionRepo
}

func (t *pgTx) Installations() shared.InstallationRepository {
	if t.installationRepo == nil {
		t.installationRepo = repository.NewInstallationRepository()
	}
	return t.installationRepo
}

func (t *pgTx) Reminders() shared.ReminderRepository {
	if t.reminderRepo == nil {
		t.reminderRepo = repository.NewReminderRepository()
	}
	return t.reminderRepo
}

func (t *pgTx) Usage() shared.UsageRepository {
	if t.usageRepo == nil {
		t.usageRepo = repository.NewUsageRepository()
	}
	return t.usageRepo
}

func (t *pgTx) Impact() shared.ImpactRepository {
	if t.impactRepo == nil {
		t.impactRepo = repository.NewImpactRepository()
	}
	return t.impactRepo
}

func (t *pgTx) SupportTickets() shared.SupportTicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewSupportTicketRepository()
	}
	return t.ticketRepo
}

func (t *pgTx) Referrals() shared.ReferralRepository {
	if t.referralRepo == nil {
		t.referralRepo = repository.NewReferralRepository()
	}
	return t.referralRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository()
	}
	return t.paymentRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{ex: t.ex}
	}
	return t.commandReads
}

type commandReads struct {
	ex db.Executor
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return repository.NewUserRepository().FindByEmail(ctx, r.ex, email)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return repository.NewUserRepository().FindByID(ctx, r.ex, id)
}

func (r *commandReads) UserByReferralCode(ctx context.Context, code string) (*user.User, error) {
	return repository.NewUserRepository().FindByReferralCode(ctx, r.ex, code)
}

func (r *commandReads) SubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*subscription.Subscription, error) {
	return repository.NewSubscriptionRepository().FindByUserID(ctx, r.ex, userID)
}

func (r *commandReads) InstallationByID(ctx context.Context, id uuid.UUID) (*installation.Installation, error) {
	return repository.NewInstallationRepository().FindByID(ctx, r.ex, id)
}

func (r *commandReads) ReminderByID(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	return repository.NewReminderRepository().FindByID(ctx, r.ex, id)
}

func (r *commandReads) PaymentByTransactionID(ctx context.Context, transactionID string) (*shared.PaymentSnapshot, error) {
	return repository.NewPaymentRepository().FindByTransactionID(ctx, r.ex, transactionID)
}
