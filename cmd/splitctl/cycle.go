package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitcycle/pkg/api"
)

func newBalancesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show who owes whom in the active cycle.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := s.api.GetBalances(cmd.Context(), connect.NewRequest(&api.GetBalancesRequest{}))
			if err != nil {
				return friendly(err)
			}
			b := resp.Msg
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Total: %s  Share: %s\n\n", money(b.TotalExpenses), money(b.Share))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPAID\tBALANCE")
			for _, bal := range b.Balances {
				fmt.Fprintf(tw, "%s\t%s\t%+.2f\n", bal.Name, money(bal.TotalPaid), bal.Balance)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(b.Transfers) == 0 {
				fmt.Fprintln(out, "\nEveryone is settled up.")
				return nil
			}
			fmt.Fprintln(out, "\nSuggested transfers:")
			for _, t := range b.Transfers {
				fmt.Fprintf(out, "  %s pays %s %s\n", t.FromName, t.ToName, money(t.Amount))
			}
			return nil
		},
	}
}

func newCycleCmd(s *session) *cobra.Command {
	cycleCmd := &cobra.Command{
		Use:   "cycle",
		Short: "Close the active cycle.",
	}

	var description string
	endCmd := &cobra.Command{
		Use:   "end",
		Short: "Record the suggested transfers as a settlement and start a new cycle.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := s.api.EndCycle(cmd.Context(), connect.NewRequest(&api.EndCycleRequest{Description: description}))
			if err != nil {
				return friendly(err)
			}
			printSettlement(cmd, resp.Msg.Settlement)
			return nil
		},
	}
	endCmd.Flags().StringVarP(&description, "description", "d", "", "Settlement description (default \"Cycle ended on <date>\").")

	cycleCmd.AddCommand(endCmd)
	return cycleCmd
}

func newSettlementCmd(s *session) *cobra.Command {
	settlementCmd := &cobra.Command{
		Use:   "settlement",
		Short: "Review settlements of closed cycles.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List settlements, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := s.api.ListSettlements(cmd.Context(), connect.NewRequest(&api.ListSettlementsRequest{}))
			if err != nil {
				return friendly(err)
			}
			if len(resp.Msg.Settlements) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No settlements yet.")
				return nil
			}
			for _, st := range resp.Msg.Settlements {
				printSettlement(cmd, st)
			}
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm SETTLEMENT_ID",
		Short: "Delete a settlement from history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.api.RemoveSettlement(cmd.Context(), connect.NewRequest(&api.RemoveSettlementRequest{SettlementID: args[0]}))
			if err != nil {
				return friendly(err)
			}
			if !resp.Msg.Removed {
				return fmt.Errorf("no settlement %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}

	var undo bool
	settleCmd := &cobra.Command{
		Use:   "settle SETTLEMENT_ID ITEM",
		Short: "Mark transfer number ITEM (starting at 1) of a settlement as paid.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return errors.New("ITEM must be a positive number")
			}
			resp, err := s.api.SetSettlementItemSettled(cmd.Context(), connect.NewRequest(&api.SetSettlementItemSettledRequest{
				SettlementID: args[0],
				Index:        n - 1,
				Settled:      !undo,
			}))
			if err != nil {
				return friendly(err)
			}
			printSettlement(cmd, resp.Msg.Settlement)
			return nil
		},
	}
	settleCmd.Flags().BoolVar(&undo, "undo", false, "Mark the transfer as not paid.")

	settlementCmd.AddCommand(listCmd, rmCmd, settleCmd)
	return settlementCmd
}

func printSettlement(cmd *cobra.Command, st *api.Settlement) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  %s  (%d/%d paid, total %s)\n",
		st.ID, st.Date.Local().Format(dateFormat), st.Description,
		st.SettledCount, len(st.Items), money(st.TotalAmount))
	if len(st.Items) == 0 {
		fmt.Fprintln(out, "  nothing to transfer")
		return
	}
	for i, it := range st.Items {
		mark := " "
		if it.Settled {
			mark = "x"
		}
		fmt.Fprintf(out, "  %d. [%s] %s pays %s %s\n", i+1, mark, it.FromName, it.ToName, money(it.Amount))
	}
}

func newResetCmd(s *session) *cobra.Command {
	var yes bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all people, expenses and settlements.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to erase the ledger without --yes")
			}
			if _, err := s.api.ClearAll(cmd.Context(), connect.NewRequest(&api.ClearAllRequest{})); err != nil {
				return friendly(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ledger cleared.")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing everything.")
	return resetCmd
}
