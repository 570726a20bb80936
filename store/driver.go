package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that a database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// Person model related methods.
	CreatePerson(ctx context.Context, create *Person) (*Person, error)
	ListPersons(ctx context.Context, find *FindPerson) ([]*Person, error)
	DeletePerson(ctx context.Context, delete *DeletePerson) error

	// Slot model related methods.
	CreateSlot(ctx context.Context, create *Slot) (*Slot, error)
	ListSlots(ctx context.Context, find *FindSlot) ([]*Slot, error)
	DeleteSlot(ctx context.Context, delete *DeleteSlot) error
	// ReplacePersonSlots atomically replaces every slot of one person with
	// the given set, returning the stored rows.
	ReplacePersonSlots(ctx context.Context, personID int32, slots []*Slot) ([]*Slot, error)
}
