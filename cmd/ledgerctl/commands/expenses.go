package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/pkg/api"
)

func expensesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List, add and remove expenses",
	}
	cmd.AddCommand(expensesListCmd(a), expensesAddCmd(a), expensesRmCmd(a))
	return cmd
}

func expensesListCmd(a *app) *cobra.Command {
	var showSplits bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := a.listPeople(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := a.ledger.ListExpenses(cmd.Context(), connect.NewRequest(&api.ListExpensesRequest{}))
			if err != nil {
				return describe(err)
			}
			if len(resp.Msg.Expenses) == 0 {
				a.printf("no expenses yet\n")
				return nil
			}

			names := namesByID(people)
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT\tPAID BY\tID")
			for _, e := range resp.Msg.Expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					time.Unix(e.Date, 0).UTC().Format(time.DateOnly),
					e.Description, money.Format(e.TotalAmount), names[e.PaidBy], e.ID)
				if showSplits {
					for _, s := range e.Splits {
						fmt.Fprintf(w, "\t  %s\t%s\t\t\n", names[s.PersonID], money.Format(s.Amount))
					}
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&showSplits, "splits", false, "show each participant's share")
	return cmd
}

func expensesAddCmd(a *app) *cobra.Command {
	var (
		paidBy string
		splits []string
		equal  []string
		date   string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record an expense",
		Example: `  ledgerctl expenses add "Dinner" 30 --paid-by Alice --equal Alice,Bob,Charlie
  ledgerctl expenses add "Taxi" 12.50 --paid-by Bob --split Alice=5 --split Bob=7.50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			total, err := money.Parse(args[1])
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}

			people, err := a.listPeople(ctx)
			if err != nil {
				return err
			}
			payer, err := resolve(people, paidBy)
			if err != nil {
				return err
			}

			var shares []api.Split
			if len(equal) > 0 {
				ids := make([]string, len(equal))
				for i, name := range equal {
					if ids[i], err = resolve(people, name); err != nil {
						return err
					}
				}
				resp, err := a.ledger.SplitEvenly(ctx, connect.NewRequest(&api.SplitEvenlyRequest{
					Total:     total.Float64(),
					PersonIDs: ids,
				}))
				if err != nil {
					return describe(err)
				}
				shares = resp.Msg.Splits
			} else {
				if shares, err = parseSplits(people, splits); err != nil {
					return err
				}
			}

			if dryRun {
				resp, err := a.ledger.ValidateExpense(ctx, connect.NewRequest(&api.ValidateExpenseRequest{
					Description: args[0],
					TotalAmount: total.Float64(),
					PaidBy:      payer,
					Splits:      shares,
				}))
				if err != nil {
					return describe(err)
				}
				if !resp.Msg.Valid {
					return fmt.Errorf("- %s", strings.Join(resp.Msg.Errors, "\n- "))
				}
				a.printf("valid: splits total %s\n", money.Format(resp.Msg.SplitTotal))
				return nil
			}

			resp, err := a.ledger.AddExpense(ctx, connect.NewRequest(&api.AddExpenseRequest{
				Description: args[0],
				TotalAmount: total.Float64(),
				PaidBy:      payer,
				Splits:      shares,
				Date:        when,
			}))
			if err != nil {
				return describe(err)
			}
			a.printf("added %s (%s) %s\n", resp.Msg.Expense.Description, money.Format(resp.Msg.Expense.TotalAmount), resp.Msg.Expense.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&paidBy, "paid-by", "", "name of the person who paid")
	cmd.Flags().StringArrayVar(&splits, "split", nil, "share as name=amount (repeatable)")
	cmd.Flags().StringSliceVar(&equal, "equal", nil, "names to split the amount between equally")
	cmd.Flags().StringVar(&date, "date", "", "expense date as YYYY-MM-DD (default: now)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate without saving")
	_ = cmd.MarkFlagRequired("paid-by")
	cmd.MarkFlagsOneRequired("split", "equal")
	cmd.MarkFlagsMutuallyExclusive("split", "equal")
	return cmd
}

func expensesRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an expense and its splits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ledger.DeleteExpense(cmd.Context(), connect.NewRequest(&api.DeleteExpenseRequest{ID: args[0]})); err != nil {
				return describe(err)
			}
			a.printf("removed expense %s\n", args[0])
			return nil
		},
	}
}

// parseSplits turns name=amount pairs into splits, in the given order.
func parseSplits(people []api.Person, pairs []string) ([]api.Split, error) {
	splits := make([]api.Split, 0, len(pairs))
	for _, pair := range pairs {
		name, amount, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid split %q: want name=amount", pair)
		}
		id, err := resolve(people, name)
		if err != nil {
			return nil, err
		}
		cents, err := money.Parse(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid split %q: %w", pair, err)
		}
		splits = append(splits, api.Split{PersonID: id, Amount: cents.Float64()})
	}
	return splits, nil
}

// parseDate reads YYYY-MM-DD as a UTC date in Unix seconds. Empty returns
// nil, which the server reads as now.
func parseDate(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	sec := t.Unix()
	return &sec, nil
}
