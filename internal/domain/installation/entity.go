package installation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid installation status")

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Installation struct {
	id            uuid.UUID
	userID        uuid.UUID
	scheduledDate time.Time
	status        Status
	notes         *string
	createdAt     time.Time
}

func NewInstallation(userID uuid.UUID, scheduledDate time.Time, notes *string, now time.Time) *Installation {
	return &Installation{
		id:            uuid.New(),
		userID:        userID,
		scheduledDate: scheduledDate,
		status:        StatusScheduled,
		notes:         notes,
		createdAt:     now,
	}
}

func ReconstructInstallation(id, userID uuid.UUID, scheduledDate time.Time, status Status, notes *string, createdAt time.Time) *Installation {
	return &Installation{
		id:            id,
		userID:        userID,
		scheduledDate: scheduledDate,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
	}
}

func (i *Installation) ID() uuid.UUID            { return i.id }
func (i *Installation) UserID() uuid.UUID        { return i.userID }
func (i *Installation) ScheduledDate() time.Time { return i.scheduledDate }
func (i *Installation) Status() Status           { return i.status }
func (i *Installation) Notes() *string           { return i.notes }
func (i *Installation) CreatedAt() time.Time     { return i.createdAt }
