package calendar

import (
	"context"
	"time"

	"github.com/meetcal/meetcal/store"
)

// Store is the slice of the storage layer the calendar service depends
// on. The service receives it explicitly on construction; nothing in
// this package reaches for a shared global.
type Store interface {
	CreatePerson(ctx context.Context, create *store.Person) (*store.Person, error)
	GetPerson(ctx context.Context, find *store.FindPerson) (*store.Person, error)
	ListPersons(ctx context.Context, find *store.FindPerson) ([]*store.Person, error)
	DeletePerson(ctx context.Context, delete *store.DeletePerson) error
	ListSlots(ctx context.Context, find *store.FindSlot) ([]*store.Slot, error)
	ReplacePersonSlots(ctx context.Context, personID int32, slots []*store.Slot) ([]*store.Slot, error)
}

// Service is the calendar engine surface used by transports (HTTP
// handlers, CLI commands).
type Service interface {
	AddPerson(ctx context.Context, username, nickname string) (*store.Person, error)
	GetPerson(ctx context.Context, username string) (*store.Person, error)
	ListPersons(ctx context.Context) ([]*store.Person, error)
	RemovePerson(ctx context.Context, username string) error

	// AddSlot folds one interval into a person's availability and returns
	// the person's full normalized availability after the insert.
	AddSlot(ctx context.Context, username string, start, end time.Time) ([]Interval, error)
	ListSlots(ctx context.Context, username string) ([]Interval, error)

	// ResolveMeeting intersects the availability of all named participants
	// and returns the common free windows of at least minDuration,
	// ascending by start. A query with no participants is ErrEmptyQuery.
	ResolveMeeting(ctx context.Context, usernames []string, minDuration time.Duration) ([]Interval, error)
}
