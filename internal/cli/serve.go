package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meetcal/meetcal/server"
)

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the meetcal HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p, err := loadProfile(version)
			if err != nil {
				return err
			}
			st, err := openStore(ctx, p)
			if err != nil {
				return err
			}

			s, err := server.NewServer(ctx, p, st)
			if err != nil {
				_ = st.Close()
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- s.Start(ctx)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					slog.Error("server failed", "error", err)
				}
				s.Shutdown(context.Background())
				return err
			case <-ctx.Done():
				slog.Info("shutting down")
				s.Shutdown(context.Background())
				return nil
			}
		},
	}
}
