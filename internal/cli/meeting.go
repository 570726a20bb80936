package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newMeetingCommand(version string) *cobra.Command {
	var minDuration time.Duration
	cmd := &cobra.Command{
		Use:   "meeting <username>...",
		Short: "Find the windows where all named participants are free",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			windows, err := svc.ResolveMeeting(ctx, args, minDuration)
			if err != nil {
				return err
			}
			if len(windows) == 0 {
				fmt.Println("no common window")
				return nil
			}
			printIntervals(windows)
			return nil
		},
	}
	cmd.Flags().DurationVar(&minDuration, "min-duration", 0, "drop windows shorter than the meeting needs, e.g. 30m")
	return cmd
}
