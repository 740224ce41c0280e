package commands

import (
	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/api"
)

func registerCmd(a *app) *cobra.Command {
	var email, name, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.auth.Register(cmd.Context(), connect.NewRequest(&api.RegisterRequest{
				Email:       email,
				DisplayName: name,
				Password:    password,
			}))
			if err != nil {
				return describe(err)
			}
			a.printf("registered %s\n", resp.Msg.User.Email)
			a.printf("export LEDGERCTL_TOKEN=%s\n", resp.Msg.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "display name (default: part of the email before @)")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 8 characters")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.auth.Login(cmd.Context(), connect.NewRequest(&api.LoginRequest{
				Email:    email,
				Password: password,
			}))
			if err != nil {
				return describe(err)
			}
			a.printf("export LEDGERCTL_TOKEN=%s\n", resp.Msg.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.auth.GetCurrentUser(cmd.Context(), connect.NewRequest(&api.GetCurrentUserRequest{}))
			if err != nil {
				return describe(err)
			}
			a.printf("%s <%s>\n", resp.Msg.User.DisplayName, resp.Msg.User.Email)
			return nil
		},
	}
}
