package calendar

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/meetcal/meetcal/store"
)

// maxConcurrentFetches bounds how many participants' availability is
// loaded from the store at once during a single resolve.
const maxConcurrentFetches = 4

// Resolver answers meeting queries: the common free windows of a set of
// participants. Each Resolve works on a snapshot of the participants'
// availability loaded at call time; writes that land mid-resolve show
// up in the next call.
type Resolver struct {
	store    Store
	fetchSem *semaphore.Weighted
}

func NewResolver(st Store) *Resolver {
	return &Resolver{
		store:    st,
		fetchSem: semaphore.NewWeighted(maxConcurrentFetches),
	}
}

// Resolve intersects the availability of all named participants and
// returns the windows of at least minDuration, ascending by start.
// Duplicate usernames count once. An unknown participant fails the whole
// query with *UnknownPersonError; a query with no participants is
// ErrEmptyQuery.
func (r *Resolver) Resolve(ctx context.Context, usernames []string, minDuration time.Duration) ([]Interval, error) {
	participants := dedupe(usernames)
	if len(participants) == 0 {
		return nil, ErrEmptyQuery
	}

	sets := make([]*AvailabilitySet, len(participants))
	g, gctx := errgroup.WithContext(ctx)
	for i, username := range participants {
		i, username := i, username
		g.Go(func() error {
			if err := r.fetchSem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer r.fetchSem.Release(1)

			set, err := r.fetchAvailability(gctx, username)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	common := sets[0]
	for _, set := range sets[1:] {
		common = common.Intersect(set)
		if common.IsEmpty() {
			break
		}
	}

	windows := make([]Interval, 0, common.Len())
	for _, iv := range common.Intervals() {
		if iv.Duration() >= minDuration {
			windows = append(windows, iv)
		}
	}
	return windows, nil
}

func (r *Resolver) fetchAvailability(ctx context.Context, username string) (*AvailabilitySet, error) {
	person, err := r.store.GetPerson(ctx, &store.FindPerson{Username: &username})
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, &UnknownPersonError{Username: username}
	}
	slots, err := r.store.ListSlots(ctx, &store.FindSlot{PersonID: &person.ID})
	if err != nil {
		return nil, err
	}
	return slotsToSet(slots), nil
}

// dedupe drops repeated usernames, keeping first-occurrence order.
func dedupe(usernames []string) []string {
	seen := make(map[string]struct{}, len(usernames))
	out := make([]string, 0, len(usernames))
	for _, u := range usernames {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
