package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitcycle/pkg/api"
)

const dateFormat = "2006-01-02"

func newExpenseCmd(s *session) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and review expenses.",
	}

	var category, dateString string
	addCmd := &cobra.Command{
		Use:   "add PAYER AMOUNT DESCRIPTION",
		Short: "Record an expense paid by PAYER (id or name).",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			payer, err := s.resolvePerson(cmd.Context(), args[0])
			if err != nil {
				return friendly(err)
			}

			req := &api.AddExpenseRequest{
				PayerID:     payer.ID,
				Amount:      args[1],
				Description: args[2],
				Category:    category,
			}
			if dateString != "" {
				date, err := time.ParseInLocation(dateFormat, dateString, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateString)
				}
				req.Date = &date
			}

			resp, err := s.api.AddExpense(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return friendly(err)
			}
			e := resp.Msg.Expense
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s paid %s for %s (%s)\n",
				e.ID, payer.Name, money(e.Amount), e.Description, e.Category)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Expense category (default \"Other\").")
	addCmd.Flags().StringVar(&dateString, "date", "", "Expense date as YYYY-MM-DD (default today).")

	rmCmd := &cobra.Command{
		Use:   "rm EXPENSE_ID",
		Short: "Remove an expense from the active cycle.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := s.api.RemoveExpense(cmd.Context(), connect.NewRequest(&api.RemoveExpenseRequest{ExpenseID: args[0]}))
			if err != nil {
				return friendly(err)
			}
			if !resp.Msg.Removed {
				return fmt.Errorf("no active expense %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}

	var payerRef, filterCategory string
	var archived bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses of the active cycle, or of closed cycles with --archived.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var expenses []*api.Expense
			var total float64
			var categories []*api.CategoryTotal

			if archived {
				resp, err := s.api.ListArchivedExpenses(cmd.Context(), connect.NewRequest(&api.ListArchivedExpensesRequest{}))
				if err != nil {
					return friendly(err)
				}
				expenses = resp.Msg.Expenses
				for _, e := range expenses {
					total += e.Amount
				}
			} else {
				req := &api.ListExpensesRequest{Category: filterCategory}
				if payerRef != "" {
					payer, err := s.resolvePerson(cmd.Context(), payerRef)
					if err != nil {
						return friendly(err)
					}
					req.PayerID = payer.ID
				}
				resp, err := s.api.ListExpenses(cmd.Context(), connect.NewRequest(req))
				if err != nil {
					return friendly(err)
				}
				expenses, total, categories = resp.Msg.Expenses, resp.Msg.Total, resp.Msg.Categories
			}

			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, "No expenses.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tPAID BY\tAMOUNT\tCATEGORY\tDESCRIPTION")
			for _, e := range expenses {
				payer := e.PayerName
				if payer == "" {
					payer = e.PayerID
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Date.Local().Format(dateFormat), payer, money(e.Amount), e.Category, e.Description)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nTotal: %s\n", money(total))

			if len(categories) > 0 {
				fmt.Fprintln(out, "\nBy category:")
				for _, c := range categories {
					fmt.Fprintf(out, "  %-15s %10s  (%d)\n", c.Category, money(c.Amount), c.Count)
				}
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&payerRef, "payer", "", "Only expenses paid by this person (id or name).")
	listCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Only expenses in this category.")
	listCmd.Flags().BoolVar(&archived, "archived", false, "List expenses of closed cycles.")

	expenseCmd.AddCommand(addCmd, rmCmd, listCmd)
	return expenseCmd
}

func newCategoriesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the suggested expense categories.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := s.api.ListCategories(cmd.Context(), connect.NewRequest(&api.ListCategoriesRequest{}))
			if err != nil {
				return friendly(err)
			}
			for _, c := range resp.Msg.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
