package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meetcal/meetcal/store"
)

func TestPersonStore(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	alice := createTestingPerson(ctx, t, ts, "alice")
	require.Greater(t, alice.ID, int32(0))
	require.NotZero(t, alice.CreatedTs)

	// Username is unique.
	_, err := ts.CreatePerson(ctx, &store.Person{Username: "alice", Nickname: "imposter"})
	require.Error(t, err)

	bob := createTestingPerson(ctx, t, ts, "bob")

	got, err := ts.GetPerson(ctx, &store.FindPerson{Username: &alice.Username})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, alice.ID, got.ID)

	missing := "ghost"
	got, err = ts.GetPerson(ctx, &store.FindPerson{Username: &missing})
	require.NoError(t, err)
	require.Nil(t, got)

	list, err := ts.ListPersons(ctx, &store.FindPerson{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, alice.ID, list[0].ID)
	require.Equal(t, bob.ID, list[1].ID)

	require.NoError(t, ts.DeletePerson(ctx, &store.DeletePerson{ID: alice.ID}))
	list, err = ts.ListPersons(ctx, &store.FindPerson{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "bob", list[0].Username)
}

func TestPersonStore_Pagination(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	for _, name := range []string{"a", "b", "c", "d"} {
		createTestingPerson(ctx, t, ts, name)
	}

	limit, offset := 2, 1
	list, err := ts.ListPersons(ctx, &store.FindPerson{Limit: &limit, Offset: &offset})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b", list[0].Username)
	require.Equal(t, "c", list[1].Username)
}
