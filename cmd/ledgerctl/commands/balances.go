package commands

import (
	"fmt"
	"text/tabwriter"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/pkg/api"
)

func balancesCmd(a *app) *cobra.Command {
	var members bool
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show suggested payments that settle all debts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.ledger.GetBalances(cmd.Context(), connect.NewRequest(&api.GetBalancesRequest{}))
			if err != nil {
				return describe(err)
			}

			if len(resp.Msg.Balances) == 0 {
				a.printf("everyone is settled up\n")
			}
			for _, b := range resp.Msg.Balances {
				a.printf("%s owes %s %s\n", b.FromName, b.ToName, money.Format(b.Amount))
			}

			if !members {
				return nil
			}
			a.printf("\n")
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "NAME\tPAID\tOWED\tNET\t")
			for _, m := range resp.Msg.Members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", m.Name, money.Format(m.Paid), money.Format(m.Owed), money.Format(m.Net))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&members, "members", false, "also show what each person paid and owes")
	return cmd
}
