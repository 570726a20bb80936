package store

import (
	"context"

	"github.com/pkg/errors"
)

// Person is the object representing a calendar participant. Username is
// the opaque, caller-supplied person id; it is unique and immutable after
// creation. Nickname is the human display name.
type Person struct {
	ID        int32
	Username  string
	Nickname  string
	CreatedTs int64
	UpdatedTs int64
}

// FindPerson is the find condition for persons.
type FindPerson struct {
	ID       *int32
	Username *string

	// Pagination
	Limit  *int
	Offset *int
}

// DeletePerson is the delete request for a person. Deleting a person also
// deletes their slots (cascade in the schema).
type DeletePerson struct {
	ID int32
}

// CreatePerson creates a new person.
func (s *Store) CreatePerson(ctx context.Context, create *Person) (*Person, error) {
	person, err := s.driver.CreatePerson(ctx, create)
	if err != nil {
		return nil, err
	}
	s.personCache.Set(person.Username, person)
	return person, nil
}

// ListPersons lists persons with filter.
func (s *Store) ListPersons(ctx context.Context, find *FindPerson) ([]*Person, error) {
	return s.driver.ListPersons(ctx, find)
}

// GetPerson gets a single person matching the filter, or nil when absent.
func (s *Store) GetPerson(ctx context.Context, find *FindPerson) (*Person, error) {
	if find.Username != nil && find.ID == nil {
		if v, ok := s.personCache.Get(*find.Username); ok {
			if person, ok := v.(*Person); ok {
				return person, nil
			}
		}
	}

	list, err := s.driver.ListPersons(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	person := list[0]
	s.personCache.Set(person.Username, person)
	return person, nil
}

// DeletePerson deletes a person and all of their slots.
func (s *Store) DeletePerson(ctx context.Context, delete *DeletePerson) error {
	person, err := s.GetPerson(ctx, &FindPerson{ID: &delete.ID})
	if err != nil {
		return errors.Wrap(err, "failed to load person before delete")
	}
	if err := s.driver.DeletePerson(ctx, delete); err != nil {
		return err
	}
	if person != nil {
		s.personCache.Delete(person.Username)
	}
	s.invalidateSlotCache(ctx, delete.ID)
	return nil
}
