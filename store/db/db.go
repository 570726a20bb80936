package db

import (
	"github.com/pkg/errors"

	"github.com/meetcal/meetcal/internal/profile"
	"github.com/meetcal/meetcal/store"
	"github.com/meetcal/meetcal/store/db/postgres"
	"github.com/meetcal/meetcal/store/db/sqlite"
)

// NewDBDriver creates new db driver based on profile.
//
// SQLite is the default and needs no external service; it is what the CLI
// and single-node deployments use. PostgreSQL is for deployments that
// want concurrent writers or managed backups.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver %q: only 'sqlite' and 'postgres' are supported", profile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
