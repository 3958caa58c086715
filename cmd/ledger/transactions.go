package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/finances-ledger/internal/entity/transaction"
)

func addCmd(a *app) *cobra.Command {
	var draft transaction.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income (positive amount) or an expense (negative amount)",
		Example: `  ledger add --description Salary --amount 5000 --date 2024-06-01 --time 09:00
  ledger add --description "Monthly rent" --amount -1500.00 --date 05/06/2024 --time 10:00`,
		Args: cobra.NoArgs,
		RunE: a.withLedger(func(cmd *cobra.Command, _ []string) error {
			in, err := draft.Parse()
			if err != nil {
				return err
			}
			rec, err := a.ledger.Add(cmd.Context(), in)
			if err != nil {
				return errors.Wrap(err, "add")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s %s %s %s\n",
				rec.ID, rec.Date, rec.Time, rec.Description, styleAmount(rec.Amount))
			return err
		}),
	}

	cmd.Flags().StringVar(&draft.Description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&draft.Amount, "amount", "", "signed decimal amount, e.g. -12.50")
	cmd.Flags().StringVar(&draft.Date, "date", "", "YYYY-MM-DD or DD/MM/YYYY")
	cmd.Flags().StringVar(&draft.Time, "time", "", "HH:MM")

	return cmd
}

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: a.withLedger(func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Errorf("invalid id %q", args[0])
			}
			n, err := a.ledger.Remove(cmd.Context(), id)
			if err != nil {
				return errors.Wrap(err, "remove")
			}
			if n == 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No transaction #%d\n", id)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d\n", id)
			return err
		}),
	}
}
