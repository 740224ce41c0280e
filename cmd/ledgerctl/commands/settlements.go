package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/pkg/api"
)

func settleCmd(a *app) *cobra.Command {
	var note, date string
	cmd := &cobra.Command{
		Use:     "settle <from> <to> <amount>",
		Short:   "Record that <from> paid <to>",
		Example: `  ledgerctl settle Bob Alice 20 --note "bank transfer"`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(args[2])
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}
			people, err := a.listPeople(cmd.Context())
			if err != nil {
				return err
			}
			from, err := resolve(people, args[0])
			if err != nil {
				return err
			}
			to, err := resolve(people, args[1])
			if err != nil {
				return err
			}

			resp, err := a.ledger.AddSettlement(cmd.Context(), connect.NewRequest(&api.AddSettlementRequest{
				FromID: from,
				ToID:   to,
				Amount: amount.Float64(),
				Date:   when,
				Note:   note,
			}))
			if err != nil {
				return describe(err)
			}
			a.printf("%s paid %s %s\n", args[0], args[1], money.Format(resp.Msg.Settlement.Amount))
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	cmd.Flags().StringVar(&date, "date", "", "settlement date as YYYY-MM-DD (default: today)")
	return cmd
}

func settlementsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlements",
		Short: "List and remove settlements",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List settlements, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := a.listPeople(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := a.ledger.ListSettlements(cmd.Context(), connect.NewRequest(&api.ListSettlementsRequest{}))
			if err != nil {
				return describe(err)
			}
			if len(resp.Msg.Settlements) == 0 {
				a.printf("no settlements yet\n")
				return nil
			}

			names := namesByID(people)
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tFROM\tTO\tAMOUNT\tNOTE\tID")
			for _, s := range resp.Msg.Settlements {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					time.Unix(s.Date, 0).UTC().Format(time.DateOnly),
					names[s.FromID], names[s.ToID], money.Format(s.Amount), s.Note, s.ID)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ledger.DeleteSettlement(cmd.Context(), connect.NewRequest(&api.DeleteSettlementRequest{ID: args[0]})); err != nil {
				return describe(err)
			}
			a.printf("removed settlement %s\n", args[0])
			return nil
		},
	})

	return cmd
}
