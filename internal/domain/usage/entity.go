package usage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveLitres = errors.New("litres used must be a positive number")
	ErrUnparsableLitres  = errors.New("litres used is not a number")
)

// Litres is the recorded quantity of filtered water for one day.
// Kept as a value object so the positive-number rule lives in one place.
type Litres struct {
	value decimal.Decimal
}

func NewLitres(d decimal.Decimal) (Litres, error) {
	if d.Sign() <= 0 {
		return Litres{}, ErrNonPositiveLitres
	}
	return Litres{value: d}, nil
}

// ParseLitres rejects non-numeric input at the boundary; unlike the
// read path there is no silent coercion to zero.
func ParseLitres(s string) (Litres, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Litres{}, ErrUnparsableLitres
	}
	return NewLitres(d)
}

func (l Litres) Decimal() decimal.Decimal { return l.value }
func (l Litres) String() string           { return l.value.String() }

// Entry is one append-only consumption record. Entries are never
// mutated or deleted once written.
type Entry struct {
	id        uuid.UUID
	userID    uuid.UUID
	date      time.Time
	litres    Litres
	createdAt time.Time
	updatedAt time.Time
}

// NewEntry defaults the consumption date to now when the caller omitted it.
func NewEntry(userID uuid.UUID, date *time.Time, litres Litres, now time.Time) *Entry {
	d := now
	if date != nil {
		d = *date
	}
	return &Entry{
		id:        uuid.New(),
		userID:    userID,
		date:      d,
		litres:    litres,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructEntry(id, userID uuid.UUID, date time.Time, litres Litres, createdAt, updatedAt time.Time) *Entry {
	return &Entry{
		id:        id,
		userID:    userID,
		date:      date,
		litres:    litres,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) UserID() uuid.UUID    { return e.userID }
func (e *Entry) Date() time.Time      { return e.date }
func (e *Entry) Litres() Litres       { return e.litres }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }
