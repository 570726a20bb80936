package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meetcal/meetcal/internal/profile"
	"github.com/meetcal/meetcal/server/service/calendar"
	"github.com/meetcal/meetcal/store"
	"github.com/meetcal/meetcal/store/db"
)

// NewRootCommand creates the root command for the meetcal CLI.
// Every flag can also be set via a MEETCAL_ environment variable, e.g.
// MEETCAL_DRIVER=postgres MEETCAL_DSN=...
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetcal",
		Short: "meetcal - shared availability and meeting scheduling",
		Long:  "meetcal tracks per-person availability and finds the time windows where everyone in a group is free.",
	}

	cmd.PersistentFlags().String("mode", "demo", `mode of server, can be "prod" or "dev" or "demo"`)
	cmd.PersistentFlags().String("addr", "", "address of server")
	cmd.PersistentFlags().Int("port", 8081, "port of server")
	cmd.PersistentFlags().String("data", "", "data directory")
	cmd.PersistentFlags().String("driver", "sqlite", "database driver (sqlite or postgres)")
	cmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn"} {
		_ = viper.BindPFlag(flag, cmd.PersistentFlags().Lookup(flag))
	}
	viper.SetEnvPrefix("meetcal")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(newServeCommand(version))
	cmd.AddCommand(newPersonCommand(version))
	cmd.AddCommand(newSlotCommand(version))
	cmd.AddCommand(newMeetingCommand(version))

	return cmd
}

func loadProfile(version string) (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Version: version,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// openStore connects the configured database, applies pending migrations
// and returns a ready store. The caller owns Close.
func openStore(ctx context.Context, p *profile.Profile) (*store.Store, error) {
	driver, err := db.NewDBDriver(p)
	if err != nil {
		return nil, err
	}
	st := store.New(driver, p)
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// openCalendar is the shorthand for the data commands: profile, store and
// calendar service in one call.
func openCalendar(ctx context.Context, version string) (calendar.Service, *store.Store, error) {
	p, err := loadProfile(version)
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return calendar.NewService(st), st, nil
}
