package main

import (
	"fmt"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitcycle/pkg/api"
)

func newPersonCmd(s *session) *cobra.Command {
	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Manage the people sharing expenses.",
	}

	var color string
	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a person.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.api.AddPerson(cmd.Context(), connect.NewRequest(&api.AddPersonRequest{
				Name:     args[0],
				ColorHex: color,
			}))
			if err != nil {
				return friendly(err)
			}
			p := resp.Msg.Person
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&color, "color", "", "Display color such as #4ECDC4. Picked from the palette when empty.")

	renameCmd := &cobra.Command{
		Use:   "rename PERSON NEW_NAME",
		Short: "Rename a person (by id or name).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.resolvePerson(cmd.Context(), args[0])
			if err != nil {
				return friendly(err)
			}
			resp, err := s.api.RenamePerson(cmd.Context(), connect.NewRequest(&api.RenamePersonRequest{
				PersonID: p.ID,
				Name:     args[1],
			}))
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", p.Name, resp.Msg.Person.Name)
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm PERSON",
		Short: "Remove a person (by id or name) and the expenses they paid this cycle.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.resolvePerson(cmd.Context(), args[0])
			if err != nil {
				return friendly(err)
			}
			if _, err := s.api.RemovePerson(cmd.Context(), connect.NewRequest(&api.RemovePersonRequest{PersonID: p.ID})); err != nil {
				return friendly(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List people with what they paid this cycle.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := s.api.ListPeople(cmd.Context(), connect.NewRequest(&api.ListPeopleRequest{}))
			if err != nil {
				return friendly(err)
			}
			if len(resp.Msg.People) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No people yet.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPAID\tCOLOR")
			for _, p := range resp.Msg.People {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, money(p.TotalPaid), p.ColorHex)
			}
			return tw.Flush()
		},
	}

	personCmd.AddCommand(addCmd, renameCmd, rmCmd, listCmd)
	return personCmd
}
