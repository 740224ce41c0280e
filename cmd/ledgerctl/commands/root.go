package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

const defaultServer = "http://localhost:8080"

// app carries the clients shared by every subcommand.
type app struct {
	serverURL string
	token     string
	timeout   time.Duration
	out       io.Writer

	ledger apiconnect.LedgerServiceClient
	auth   apiconnect.AuthServiceClient
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd(os.Stdout).Execute()
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Command-line client for the splitledger server",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.token == "" {
				a.token = os.Getenv("LEDGERCTL_TOKEN")
			}
			httpClient := &http.Client{Timeout: a.timeout}
			opts := connect.WithInterceptors(bearerInterceptor(a.token))
			a.ledger = apiconnect.NewLedgerServiceClient(httpClient, a.serverURL, opts)
			a.auth = apiconnect.NewAuthServiceClient(httpClient, a.serverURL, opts)
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.serverURL, "server", defaultServer, "server base URL")
	root.PersistentFlags().StringVar(&a.token, "token", "", "session token (default $LEDGERCTL_TOKEN)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		registerCmd(a),
		loginCmd(a),
		whoamiCmd(a),
		peopleCmd(a),
		expensesCmd(a),
		settleCmd(a),
		settlementsCmd(a),
		balancesCmd(a),
	)
	return root
}

// bearerInterceptor attaches the session token to outgoing calls.
func bearerInterceptor(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" && req.Spec().IsClient {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// describe turns RPC errors into messages for the terminal. Validation
// failures list every broken rule.
func describe(err error) error {
	if msgs := apiconnect.ValidationMessages(err); len(msgs) > 0 {
		return errors.New("- " + strings.Join(msgs, "\n- "))
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		if cerr.Code() == connect.CodeUnauthenticated {
			return fmt.Errorf("%s (run `ledgerctl login` and set LEDGERCTL_TOKEN)", cerr.Message())
		}
		return errors.New(cerr.Message())
	}
	return err
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
