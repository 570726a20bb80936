package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Slot is one stored availability interval [StartTs, EndTs) for a person,
// unix seconds. Rows are always kept in merged form: the calendar service
// replaces a person's whole slot set after folding a new interval in, so
// no two rows for the same person ever overlap or touch.
type Slot struct {
	ID        int32
	UID       string
	PersonID  int32
	CreatedTs int64
	StartTs   int64
	EndTs     int64
}

// FindSlot is the find condition for slots.
type FindSlot struct {
	ID       *int32
	UID      *string
	PersonID *int32
}

// DeleteSlot is the delete request for a single slot row.
type DeleteSlot struct {
	ID int32
}

// CreateSlot creates a single slot row without merge semantics. The
// calendar service goes through ReplacePersonSlots instead; this exists
// for seeding and tests.
func (s *Store) CreateSlot(ctx context.Context, create *Slot) (*Slot, error) {
	slot, err := s.driver.CreateSlot(ctx, create)
	if err != nil {
		return nil, err
	}
	s.invalidateSlotCache(ctx, create.PersonID)
	return slot, nil
}

// ListSlots lists slots with filter, ordered by start_ts ascending.
// Per-person lookups are served from the slot cache when warm.
func (s *Store) ListSlots(ctx context.Context, find *FindSlot) ([]*Slot, error) {
	cacheable := find.PersonID != nil && find.ID == nil && find.UID == nil
	if cacheable {
		if slots, ok := s.cachedPersonSlots(ctx, *find.PersonID); ok {
			return slots, nil
		}
	}

	list, err := s.driver.ListSlots(ctx, find)
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.fillSlotCache(ctx, *find.PersonID, list)
	}
	return list, nil
}

// DeleteSlot deletes a single slot row.
func (s *Store) DeleteSlot(ctx context.Context, delete *DeleteSlot) error {
	slot, err := s.driver.ListSlots(ctx, &FindSlot{ID: &delete.ID})
	if err != nil {
		return err
	}
	if err := s.driver.DeleteSlot(ctx, delete); err != nil {
		return err
	}
	if len(slot) > 0 {
		s.invalidateSlotCache(ctx, slot[0].PersonID)
	}
	return nil
}

// ReplacePersonSlots transactionally swaps a person's entire slot set.
// This is the persistence half of an availability insert: the service
// merges in memory and persists the normalized result, so readers never
// observe a partially merged state.
func (s *Store) ReplacePersonSlots(ctx context.Context, personID int32, slots []*Slot) ([]*Slot, error) {
	replaced, err := s.driver.ReplacePersonSlots(ctx, personID, slots)
	if err != nil {
		return nil, err
	}
	s.invalidateSlotCache(ctx, personID)
	return replaced, nil
}

func slotCacheKey(personID int32) string {
	return fmt.Sprintf("slots:%d", personID)
}

// cachedPersonSlots checks L1 then the optional Redis L2.
func (s *Store) cachedPersonSlots(ctx context.Context, personID int32) ([]*Slot, bool) {
	key := slotCacheKey(personID)
	if v, ok := s.slotCache.Get(key); ok {
		if slots, ok := v.([]*Slot); ok {
			return slots, true
		}
	}
	if s.redisCache == nil {
		return nil, false
	}
	raw, ok := s.redisCache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var slots []*Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		slog.Warn("discarding undecodable slot cache entry", "key", key, "error", err)
		s.redisCache.Delete(ctx, key)
		return nil, false
	}
	s.slotCache.Set(key, slots)
	return slots, true
}

func (s *Store) fillSlotCache(ctx context.Context, personID int32, slots []*Slot) {
	key := slotCacheKey(personID)
	s.slotCache.Set(key, slots)
	if s.redisCache == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	s.redisCache.Set(ctx, key, raw)
}

func (s *Store) invalidateSlotCache(ctx context.Context, personID int32) {
	key := slotCacheKey(personID)
	s.slotCache.Delete(key)
	if s.redisCache != nil {
		s.redisCache.Delete(ctx, key)
	}
}
