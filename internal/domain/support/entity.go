package support

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("ticket title cannot be empty")
	ErrEmptyDescription = errors.New("ticket description cannot be empty")
	ErrInvalidStatus    = errors.New("invalid ticket status")
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusOpen, StatusInProgress, StatusResolved:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Ticket struct {
	id          uuid.UUID
	userID      uuid.UUID
	title       string
	description string
	status      Status
	imageURL    *string
	createdAt   time.Time
}

func NewTicket(userID uuid.UUID, title, description string, imageURL *string, now time.Time) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Ticket{
		id:          uuid.New(),
		userID:      userID,
		title:       title,
		description: description,
		status:      StatusOpen,
		imageURL:    imageURL,
		createdAt:   now,
	}, nil
}

func ReconstructTicket(id, userID uuid.UUID, title, description string, status Status, imageURL *string, createdAt time.Time) *Ticket {
	return &Ticket{
		id:          id,
		userID:      userID,
		title:       title,
		description: description,
		status:      status,
		imageURL:    imageURL,
		createdAt:   createdAt,
	}
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) UserID() uuid.UUID    { return t.userID }
func (t *Ticket) Title() string        { return t.title }
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) ImageURL() *string    { return t.imageURL }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
