package test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meetcal/meetcal/internal/profile"
	"github.com/meetcal/meetcal/store"
	"github.com/meetcal/meetcal/store/db"
)

// NewTestingStore opens a fresh sqlite store in a per-test temp dir and
// applies the latest schema.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	t.Helper()
	dir := t.TempDir()
	p := &profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		Data:   dir,
		DSN:    filepath.Join(dir, "meetcal_test.db"),
	}

	driver, err := db.NewDBDriver(p)
	require.NoError(t, err)

	ts := store.New(driver, p)
	require.NoError(t, ts.Migrate(ctx))
	t.Cleanup(func() {
		_ = ts.Close()
	})
	return ts
}

func createTestingPerson(ctx context.Context, t *testing.T, ts *store.Store, username string) *store.Person {
	t.Helper()
	person, err := ts.CreatePerson(ctx, &store.Person{
		Username: username,
		Nickname: username,
	})
	require.NoError(t, err)
	return person
}
