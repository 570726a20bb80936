package calendar

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetcal/meetcal/store"
)

// MockStoreForCalendar is an in-memory implementation of the Store
// interface for testing.
type MockStoreForCalendar struct {
	mu      sync.Mutex
	nextID  int32
	persons []*store.Person
	slots   []*store.Slot
}

func NewMockStoreForCalendar() *MockStoreForCalendar {
	return &MockStoreForCalendar{nextID: 1}
}

func (m *MockStoreForCalendar) CreatePerson(ctx context.Context, create *store.Person) (*store.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	create.ID = m.nextID
	m.nextID++
	create.CreatedTs = time.Now().Unix()
	create.UpdatedTs = create.CreatedTs
	m.persons = append(m.persons, create)
	return create, nil
}

func (m *MockStoreForCalendar) GetPerson(ctx context.Context, find *store.FindPerson) (*store.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.persons {
		if find.ID != nil && p.ID != *find.ID {
			continue
		}
		if find.Username != nil && p.Username != *find.Username {
			continue
		}
		return p, nil
	}
	return nil, nil
}

func (m *MockStoreForCalendar) ListPersons(ctx context.Context, find *store.FindPerson) ([]*store.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*store.Person, 0, len(m.persons))
	for _, p := range m.persons {
		if find.Username != nil && p.Username != *find.Username {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *MockStoreForCalendar) DeletePerson(ctx context.Context, delete *store.DeletePerson) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	persons := m.persons[:0]
	for _, p := range m.persons {
		if p.ID != delete.ID {
			persons = append(persons, p)
		}
	}
	m.persons = persons

	slots := m.slots[:0]
	for _, s := range m.slots {
		if s.PersonID != delete.ID {
			slots = append(slots, s)
		}
	}
	m.slots = slots
	return nil
}

func (m *MockStoreForCalendar) ListSlots(ctx context.Context, find *store.FindSlot) ([]*store.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*store.Slot, 0)
	for _, s := range m.slots {
		if find.PersonID != nil && s.PersonID != *find.PersonID {
			continue
		}
		if find.UID != nil && s.UID != *find.UID {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *MockStoreForCalendar) ReplacePersonSlots(ctx context.Context, personID int32, slots []*store.Slot) ([]*store.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.slots[:0]
	for _, s := range m.slots {
		if s.PersonID != personID {
			kept = append(kept, s)
		}
	}
	m.slots = kept
	for _, s := range slots {
		s.ID = m.nextID
		m.nextID++
		s.PersonID = personID
		m.slots = append(m.slots, s)
	}
	return slots, nil
}

func TestService_AddPerson(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMockStoreForCalendar())

	person, err := svc.AddPerson(ctx, "alice", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", person.Username)
	assert.Equal(t, "Alice", person.Nickname)

	// Nickname defaults to the username.
	bob, err := svc.AddPerson(ctx, "bob", "")
	require.NoError(t, err)
	assert.Equal(t, "bob", bob.Nickname)

	_, err = svc.AddPerson(ctx, "alice", "Alice Again")
	var dup *DuplicatePersonError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "alice", dup.Username)
}

func TestService_GetPerson_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMockStoreForCalendar())

	_, err := svc.GetPerson(ctx, "ghost")
	var unknown *UnknownPersonError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.Username)
}

func TestService_RemovePerson(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMockStoreForCalendar())

	_, err := svc.AddPerson(ctx, "alice", "")
	require.NoError(t, err)
	_, err = svc.AddSlot(ctx, "alice", at(9, 0), at(10, 0))
	require.NoError(t, err)

	require.NoError(t, svc.RemovePerson(ctx, "alice"))

	_, err = svc.GetPerson(ctx, "alice")
	var unknown *UnknownPersonError
	require.ErrorAs(t, err, &unknown)

	err = svc.RemovePerson(ctx, "alice")
	require.ErrorAs(t, err, &unknown)
}

func TestService_AddSlot_MergesIntoAvailability(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMockStoreForCalendar())

	_, err := svc.AddPerson(ctx, "alice", "")
	require.NoError(t, err)

	got, err := svc.AddSlot(ctx, "alice", at(9, 0), at(11, 0))
	require.NoError(t, err)
	assert.Equal(t, []Interval{span(t, 9, 11)}, got)

	// Overlapping insert merges instead of stacking.
	got, err = svc.AddSlot(ctx, "alice", at(10, 0), at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, []Interval{span(t, 9, 12)}, got)

	// Disjoint insert keeps both windows, sorted.
	got, err = svc.AddSlot(ctx, "alice", at(14, 0), at(16, 0))
	require.NoError(t, err)
	assert.Equal(t, []Interval{span(t, 9, 12), span(t, 14, 16)}, got)

	listed, err := svc.ListSlots(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, got, listed)
}

func TestService_AddSlot_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMockStoreForCalendar())

	_, err := svc.AddPerson(ctx, "alice", "")
	require.NoError(t, err)

	_, err = svc.AddSlot(ctx, "alice", at(11, 0), at(9, 0))
	var invalid *InvalidRangeError
	require.ErrorAs(t, err, &invalid)

	_, err = svc.AddSlot(ctx, "ghost", at(9, 0), at(10, 0))
	var unknown *UnknownPersonError
	require.ErrorAs(t, err, &unknown)
}

func TestService_AddSlot_ConcurrentSamePerson(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMockStoreForCalendar())

	_, err := svc.AddPerson(ctx, "alice", "")
	require.NoError(t, err)

	// Concurrent disjoint inserts must all survive the read-modify-write.
	var wg sync.WaitGroup
	for hour := 8; hour < 16; hour++ {
		hour := hour
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddSlot(ctx, "alice", at(hour, 0), at(hour, 30))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.ListSlots(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 8)
}
