package reminder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid reminder status")
	ErrTransitionNotAllowed = errors.New("reminder status transition not allowed")
	ErrInvalidType          = errors.New("invalid reminder type")
)

type Type string

const (
	TypeInstallation Type = "installation"
	TypeMaintenance  Type = "maintenance"
	TypePayment      Type = "payment"
)

func (t Type) String() string { return string(t) }

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusRead    Status = "read"
)

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusPending, StatusSent, StatusRead:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Allowed transitions are one-directional: a reminder never goes back
// to pending and a read reminder is terminal. pending -> read covers
// users opening a reminder before the delivery poller picked it up.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {StatusSent: true, StatusRead: true},
	StatusSent:    {StatusRead: true},
	StatusRead:    {},
}

func (s Status) CanTransitionTo(next Status) bool {
	return allowedTransitions[s][next]
}

// Reminder is a future-dated notification row. scheduledDate is fixed
// at creation; only status advances afterwards.
type Reminder struct {
	id            uuid.UUID
	userID        uuid.UUID
	reminderType  Type
	title         string
	message       string
	scheduledDate time.Time
	status        Status
	createdAt     time.Time
}

func NewReminder(userID uuid.UUID, reminderType Type, title, message string, scheduledDate, now time.Time) *Reminder {
	return &Reminder{
		id:            uuid.New(),
		userID:        userID,
		reminderType:  reminderType,
		title:         title,
		message:       message,
		scheduledDate: scheduledDate,
		status:        StatusPending,
		createdAt:     now,
	}
}

func ReconstructReminder(id, userID uuid.UUID, reminderType Type, title, message string, scheduledDate time.Time, status Status, createdAt time.Time) *Reminder {
	return &Reminder{
		id:            id,
		userID:        userID,
		reminderType:  reminderType,
		title:         title,
		message:       message,
		scheduledDate: scheduledDate,
		status:        status,
		createdAt:     createdAt,
	}
}

// AdvanceTo enforces the monotonic status machine.
func (r *Reminder) AdvanceTo(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrTransitionNotAllowed
	}
	r.status = next
	return nil
}

func (r *Reminder) ID() uuid.UUID            { return r.id }
func (r *Reminder) UserID() uuid.UUID        { return r.userID }
func (r *Reminder) Type() Type               { return r.reminderType }
func (r *Reminder) Title() string            { return r.title }
func (r *Reminder) Message() string          { return r.message }
func (r *Reminder) ScheduledDate() time.Time { return r.scheduledDate }
func (r *Reminder) Status() Status           { return r.status }
func (r *Reminder) CreatedAt() time.Time     { return r.createdAt }
