package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/meetcal/meetcal/store"
)

type service struct {
	store    Store
	resolver *Resolver

	// Per-person write lock. AddSlot is a read-modify-write of the whole
	// slot set; without serialization two concurrent inserts for the same
	// person could each persist a set missing the other's interval.
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

// NewService builds the calendar service on top of the given store.
func NewService(st Store) Service {
	return &service{
		store:    st,
		resolver: NewResolver(st),
		locks:    make(map[int32]*sync.Mutex),
	}
}

func (s *service) AddPerson(ctx context.Context, username, nickname string) (*store.Person, error) {
	existing, err := s.store.GetPerson(ctx, &store.FindPerson{Username: &username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicatePersonError{Username: username}
	}
	if nickname == "" {
		nickname = username
	}
	return s.store.CreatePerson(ctx, &store.Person{
		Username: username,
		Nickname: nickname,
	})
}

func (s *service) GetPerson(ctx context.Context, username string) (*store.Person, error) {
	person, err := s.store.GetPerson(ctx, &store.FindPerson{Username: &username})
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, &UnknownPersonError{Username: username}
	}
	return person, nil
}

func (s *service) ListPersons(ctx context.Context) ([]*store.Person, error) {
	return s.store.ListPersons(ctx, &store.FindPerson{})
}

func (s *service) RemovePerson(ctx context.Context, username string) error {
	person, err := s.GetPerson(ctx, username)
	if err != nil {
		return err
	}
	return s.store.DeletePerson(ctx, &store.DeletePerson{ID: person.ID})
}

func (s *service) AddSlot(ctx context.Context, username string, start, end time.Time) ([]Interval, error) {
	iv, err := NewInterval(start, end)
	if err != nil {
		return nil, err
	}
	person, err := s.GetPerson(ctx, username)
	if err != nil {
		return nil, err
	}

	lock := s.personLock(person.ID)
	lock.Lock()
	defer lock.Unlock()

	slots, err := s.store.ListSlots(ctx, &store.FindSlot{PersonID: &person.ID})
	if err != nil {
		return nil, err
	}
	set := slotsToSet(slots)
	set.Add(iv)

	if _, err := s.store.ReplacePersonSlots(ctx, person.ID, setToSlots(person.ID, set)); err != nil {
		return nil, err
	}
	return set.Intervals(), nil
}

func (s *service) ListSlots(ctx context.Context, username string) ([]Interval, error) {
	person, err := s.GetPerson(ctx, username)
	if err != nil {
		return nil, err
	}
	slots, err := s.store.ListSlots(ctx, &store.FindSlot{PersonID: &person.ID})
	if err != nil {
		return nil, err
	}
	return slotsToSet(slots).Intervals(), nil
}

func (s *service) ResolveMeeting(ctx context.Context, usernames []string, minDuration time.Duration) ([]Interval, error) {
	return s.resolver.Resolve(ctx, usernames, minDuration)
}

func (s *service) personLock(personID int32) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[personID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[personID] = lock
	}
	return lock
}

// slotsToSet rebuilds an availability set from stored rows. Rows are
// persisted normalized, but Add re-merges anyway, so a seeded or
// hand-edited database still yields a valid set.
func slotsToSet(slots []*store.Slot) *AvailabilitySet {
	set := &AvailabilitySet{}
	for _, slot := range slots {
		set.Add(Interval{
			Start: time.Unix(slot.StartTs, 0).UTC(),
			End:   time.Unix(slot.EndTs, 0).UTC(),
		})
	}
	return set
}

func setToSlots(personID int32, set *AvailabilitySet) []*store.Slot {
	intervals := set.Intervals()
	slots := make([]*store.Slot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, &store.Slot{
			UID:      shortuuid.New(),
			PersonID: personID,
			StartTs:  iv.Start.Unix(),
			EndTs:    iv.End.Unix(),
		})
	}
	return slots
}
