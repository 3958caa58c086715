package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Open the ledger of a user",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.session.SetActiveUser(ctx, args[0]); err != nil {
				return errors.Wrap(err, "login")
			}
			// The login sticks even when the ledger cannot be read.
			if err := a.loadLedger(ctx); err != nil {
				return errors.Wrapf(err, "logged in as %s", strings.TrimSpace(args[0]))
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s, %d transaction(s) loaded\n",
				a.ledger.User(), len(a.ledger.Query()))
			return err
		}),
	}
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the logged-in user",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string) error {
			if err := a.session.ClearActiveUser(cmd.Context()); err != nil {
				return errors.Wrap(err, "logout")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		}),
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: a.withSession(func(cmd *cobra.Command, _ []string) error {
			user, err := a.session.ActiveUser(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "whoami")
			}
			if user == "" {
				return errNotLoggedIn
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), user)
			return err
		}),
	}
}
