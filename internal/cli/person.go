package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage calendar participants",
	}

	var nickname string
	addCmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Register a new person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			person, err := svc.AddPerson(ctx, args[0], nickname)
			if err != nil {
				return err
			}
			fmt.Printf("added %s (%s)\n", person.Username, person.Nickname)
			return nil
		},
	}
	addCmd.Flags().StringVar(&nickname, "nickname", "", "display name (defaults to the username)")

	getCmd := &cobra.Command{
		Use:   "get <username>",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			person, err := svc.GetPerson(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", person.Username, person.Nickname)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			persons, err := svc.ListPersons(ctx)
			if err != nil {
				return err
			}
			for _, p := range persons {
				fmt.Printf("%s\t%s\n", p.Username, p.Nickname)
			}
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <username>",
		Short: "Delete a person and their availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, st, err := openCalendar(ctx, version)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := svc.RemovePerson(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(addCmd, getCmd, listCmd, removeCmd)
	return cmd
}
