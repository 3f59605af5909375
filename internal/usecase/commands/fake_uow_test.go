//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/domain/installation"
	"aquaflow/internal/domain/referral"
	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/subscription"
	"aquaflow/internal/domain/support"
	"aquaflow/internal/domain/usage"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/infra"
	"aquaflow/internal/infra/db"
	"aquaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory UnitOfWork. It has no transactional
// isolation; each Within call mutates shared state directly, which is
// enough to exercise command orchestration without a database.
type fakeUoW struct {
	mu sync.Mutex

	users         map[uuid.UUID]*user.User
	subscriptions map[uuid.UUID]*subscription.Subscription // keyed by user ID
	installations map[uuid.UUID]*installation.Installation
	reminders     map[uuid.UUID]*reminder.Reminder
	usageEntries  []*usage.Entry
	snapshots     map[uuid.UUID]*impact.Snapshot // keyed by user ID
	tickets       []*support.Ticket
	referrals     []*referral.Referral
	rewards       []*referral.Reward
	payments      map[string]*shared.PaymentSnapshot

	// failure injection
	reminderCreateErr func(*reminder.Reminder) error
	usageCreateErr    error
	impactUpsertErr   error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		users:         make(map[uuid.UUID]*user.User),
		subscriptions: make(map[uuid.UUID]*subscription.Subscription),
		installations: make(map[uuid.UUID]*installation.Installation),
		reminders:     make(map[uuid.UUID]*reminder.Reminder),
		snapshots:     make(map[uuid.UUID]*impact.Snapshot),
		payments:      make(map[string]*shared.PaymentSnapshot),
	}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx, &fakeTx{f: f})
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, ex db.Executor) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{f: f}
}

type fakeTx struct {
	f *fakeUoW
}

func (t *fakeTx) Users() shared.UserRepository                   { return &fakeUserRepo{t.f} }
func (t *fakeTx) Subscriptions() shared.SubscriptionRepository   { return &fakeSubscriptionRepo{t.f} }
func (t *fakeTx) Installations() shared.InstallationRepository   { return &fakeInstallationRepo{t.f} }
func (t *fakeTx) Reminders() shared.ReminderRepository           { return &fakeReminderRepo{t.f} }
func (t *fakeTx) Usage() shared.UsageRepository                  { return &fakeUsageRepo{t.f} }
func (t *fakeTx) Impact() shared.ImpactRepository                { return &fakeImpactRepo{t.f} }
func (t *fakeTx) SupportTickets() shared.SupportTicketRepository { return &fakeSupportRepo{t.f} }
func (t *fakeTx) Referrals() shared.ReferralRepository           { return &fakeReferralRepo{t.f} }
func (t *fakeTx) Payments() shared.PaymentRepository             { return &fakePaymentRepo{t.f} }
func (t *fakeTx) Reads() shared.CommandReads                     { return &fakeReads{t.f} }
func (t *fakeTx) DB() db.Executor                                { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	f *fakeUoW
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.f.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := r.f.users[id]; ok {
		return u, nil
	}
	return nil, notFound("user not found")
}

func (r *fakeReads) UserByReferralCode(_ context.Context, code string) (*user.User, error) {
	for _, u := range r.f.users {
		if u.ReferralCode() == code {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *fakeReads) SubscriptionByUserID(_ context.Context, userID uuid.UUID) (*subscription.Subscription, error) {
	if s, ok := r.f.subscriptions[userID]; ok {
		return s, nil
	}
	return nil, notFound("subscription not found")
}

func (r *fakeReads) InstallationByID(_ context.Context, id uuid.UUID) (*installation.Installation, error) {
	if inst, ok := r.f.installations[id]; ok {
		return inst, nil
	}
	return nil, notFound("installation not found")
}

func (r *fakeReads) ReminderByID(_ context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	if rem, ok := r.f.reminders[id]; ok {
		return rem, nil
	}
	return nil, notFound("reminder not found")
}

func (r *fakeReads) PaymentByTransactionID(_ context.Context, transactionID string) (*shared.PaymentSnapshot, error) {
	if p, ok := r.f.payments[transactionID]; ok {
		return p, nil
	}
	return nil, notFound("payment not found")
}

type fakeUserRepo struct{ f *fakeUoW }

func (r *fakeUserRepo) Create(_ context.Context, _ db.Executor, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.f.users {
		if existing.Email().Value() == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	r.f.users[u.ID()] = u
	return u.ID(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.Executor, userID uuid.UUID) error {
	if _, ok := r.f.users[userID]; !ok {
		return notFound("user not found")
	}
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, _ db.Executor, u *user.User) error {
	if _, ok := r.f.users[u.ID()]; !ok {
		return notFound("user not found")
	}
	r.f.users[u.ID()] = u
	return nil
}

type fakeSubscriptionRepo struct{ f *fakeUoW }

func (r *fakeSubscriptionRepo) Create(_ context.Context, _ db.Executor, sub *subscription.Subscription) (uuid.UUID, error) {
	if _, ok := r.f.subscriptions[sub.UserID()]; ok {
		return uuid.Nil, infra.WrapRepoErr("duplicate subscription", nil, infra.KindDuplicateKey)
	}
	r.f.subscriptions[sub.UserID()] = sub
	return sub.ID(), nil
}

func (r *fakeSubscriptionRepo) UpdateStripeRefs(_ context.Context, _ db.Executor, sub *subscription.Subscription) error {
	r.f.subscriptions[sub.UserID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) UpdateStatus(_ context.Context, _ db.Executor, subID uuid.UUID, status subscription.Status) error {
	for userID, sub := range r.f.subscriptions {
		if sub.ID() == subID {
			if status == subscription.StatusActive {
				sub.Activate()
			}
			r.f.subscriptions[userID] = sub
			return nil
		}
	}
	return notFound("subscription not found")
}

type fakeInstallationRepo struct{ f *fakeUoW }

func (r *fakeInstallationRepo) Create(_ context.Context, _ db.Executor, inst *installation.Installation) (uuid.UUID, error) {
	r.f.installations[inst.ID()] = inst
	return inst.ID(), nil
}

func (r *fakeInstallationRepo) UpdateStatus(_ context.Context, _ db.Executor, instID uuid.UUID, _ installation.Status) error {
	if _, ok := r.f.installations[instID]; !ok {
		return notFound("installation not found")
	}
	return nil
}

type fakeReminderRepo struct{ f *fakeUoW }

func (r *fakeReminderRepo) Create(_ context.Context, _ db.Executor, rem *reminder.Reminder) (uuid.UUID, error) {
	if r.f.reminderCreateErr != nil {
		if err := r.f.reminderCreateErr(rem); err != nil {
			return uuid.Nil, err
		}
	}
	r.f.reminders[rem.ID()] = rem
	return rem.ID(), nil
}

func (r *fakeReminderRepo) UpdateStatus(_ context.Context, _ db.Executor, rem *reminder.Reminder) error {
	if _, ok := r.f.reminders[rem.ID()]; !ok {
		return notFound("reminder not found")
	}
	r.f.reminders[rem.ID()] = rem
	return nil
}

type fakeUsageRepo struct{ f *fakeUoW }

func (r *fakeUsageRepo) Create(_ context.Context, _ db.Executor, entry *usage.Entry) (uuid.UUID, error) {
	if r.f.usageCreateErr != nil {
		return uuid.Nil, r.f.usageCreateErr
	}
	r.f.usageEntries = append(r.f.usageEntries, entry)
	return entry.ID(), nil
}

func (r *fakeUsageRepo) FindAllByUserID(_ context.Context, _ db.Executor, userID uuid.UUID) ([]*usage.Entry, error) {
	var entries []*usage.Entry
	for _, e := range r.f.usageEntries {
		if e.UserID() == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

type fakeImpactRepo struct{ f *fakeUoW }

func (r *fakeImpactRepo) AcquireUserLock(_ context.Context, _ db.Executor, _ uuid.UUID) error {
	return nil
}

func (r *fakeImpactRepo) Upsert(_ context.Context, _ db.Executor, userID uuid.UUID, metrics impact.Metrics, calculatedAt time.Time) (*impact.Snapshot, error) {
	if r.f.impactUpsertErr != nil {
		return nil, r.f.impactUpsertErr
	}
	id := uuid.New()
	if existing, ok := r.f.snapshots[userID]; ok {
		id = existing.ID()
	}
	snapshot := impact.ReconstructSnapshot(id, userID, metrics.PlasticBottlesSaved, metrics.CO2Reduced, metrics.WaterSaved, calculatedAt)
	r.f.snapshots[userID] = snapshot
	return snapshot, nil
}

type fakeSupportRepo struct{ f *fakeUoW }

func (r *fakeSupportRepo) Create(_ context.Context, _ db.Executor, ticket *support.Ticket) (uuid.UUID, error) {
	r.f.tickets = append(r.f.tickets, ticket)
	return ticket.ID(), nil
}

type fakeReferralRepo struct{ f *fakeUoW }

func (r *fakeReferralRepo) CreateReferral(_ context.Context, _ db.Executor, ref *referral.Referral) (uuid.UUID, error) {
	r.f.referrals = append(r.f.referrals, ref)
	return ref.ID(), nil
}

func (r *fakeReferralRepo) CreateReward(_ context.Context, _ db.Executor, rew *referral.Reward) (uuid.UUID, error) {
	r.f.rewards = append(r.f.rewards, rew)
	return rew.ID(), nil
}

func (r *fakeReferralRepo) ExistsForReferred(_ context.Context, _ db.Executor, referredID uuid.UUID) (bool, error) {
	for _, ref := range r.f.referrals {
		if ref.ReferredID() == referredID {
			return true, nil
		}
	}
	return false, nil
}

type fakePaymentRepo struct{ f *fakeUoW }

func (r *fakePaymentRepo) Create(_ context.Context, _ db.Executor, p *shared.PaymentSnapshot) (uuid.UUID, error) {
	r.f.payments[p.TransactionID] = p
	return p.ID, nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, _ db.Executor, transactionID, status string) error {
	p, ok := r.f.payments[transactionID]
	if !ok {
		return notFound("payment not found")
	}
	p.Status = status
	return nil
}
