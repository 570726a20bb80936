package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meetcal/meetcal/server/service/calendar"
)

func newSlotCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage per-person availability",
	}

	addCmd := &cobra.Command{
		Use:   "add <username> <start> <end>",
		Short: "Add an availability interval",
		Long:  `Add an availability interval, e.g. meetcal slot add alice "2026-03-10 09:00:00" "2026-03-10 12:00:00". Overlapping and touching intervals are merged.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start, err := calendar.ParseInstant(args[1])
			if err != nil {
				return err
			}
			end, err := calendar.ParseInstant(args[2])
			if err != nil {
				return err
			}

			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			intervals, err := svc.AddSlot(ctx, args[0], start, end)
			if err != nil {
				return err
			}
			printIntervals(intervals)
			return nil
		},
	}

	var split time.Duration
	listCmd := &cobra.Command{
		Use:   "list <username>",
		Short: "Show a person's availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			intervals, err := svc.ListSlots(ctx, args[0])
			if err != nil {
				return err
			}
			if split > 0 {
				intervals = calendar.SplitIntervals(intervals, split)
			}
			printIntervals(intervals)
			return nil
		},
	}
	listCmd.Flags().DurationVar(&split, "split", 0, "chop intervals into chunks of this size, e.g. 1h")

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}

func printIntervals(intervals []calendar.Interval) {
	for _, iv := range intervals {
		fmt.Printf("%s\t%s\n", calendar.FormatInstant(iv.Start), calendar.FormatInstant(iv.End))
	}
}
