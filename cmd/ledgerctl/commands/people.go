package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/api"
)

func peopleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "List, add and remove people",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List people in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := a.listPeople(cmd.Context())
			if err != nil {
				return err
			}
			if len(people) == 0 {
				a.printf("no people yet\n")
				return nil
			}
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tADDED\tID")
			for _, p := range people {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, time.Unix(p.CreatedAt, 0).Format(time.DateOnly), p.ID)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>...",
		Short: "Add one or more people",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				resp, err := a.ledger.AddPerson(cmd.Context(), connect.NewRequest(&api.AddPersonRequest{Name: name}))
				if err != nil {
					return fmt.Errorf("add %s: %w", name, describe(err))
				}
				a.printf("added %s\n", resp.Msg.Person.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a person nobody's expenses or settlements reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := a.listPeople(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolve(people, args[0])
			if err != nil {
				return err
			}
			if _, err := a.ledger.DeletePerson(cmd.Context(), connect.NewRequest(&api.DeletePersonRequest{ID: id})); err != nil {
				return describe(err)
			}
			a.printf("removed %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func (a *app) listPeople(ctx context.Context) ([]api.Person, error) {
	resp, err := a.ledger.ListPeople(ctx, connect.NewRequest(&api.ListPeopleRequest{}))
	if err != nil {
		return nil, describe(err)
	}
	return resp.Msg.People, nil
}

// resolve finds a person's ID by case-insensitive name.
func resolve(people []api.Person, name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, p := range people {
		if strings.EqualFold(p.Name, name) {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("unknown person %q", name)
}

// namesByID indexes people for display.
func namesByID(people []api.Person) map[string]string {
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	return names
}
