package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/model/reports"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type selectionFlags struct {
	month     string
	date      string
	thisMonth bool
	lastMonth bool
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.month, "month", reports.AllMonths, "YYYY-MM, this, last or all")
	cmd.Flags().StringVar(&f.date, "date", "", "exact date, wins over --month")
	cmd.Flags().BoolVar(&f.thisMonth, "this-month", false, "shortcut for --month this")
	cmd.Flags().BoolVar(&f.lastMonth, "last-month", false, "shortcut for --month last")
	cmd.MarkFlagsMutuallyExclusive("month", "this-month", "last-month")
}

// selection resolves the flags into a report selection, counting relative
// months from at.
func (f *selectionFlags) selection(at time.Time) (reports.Selection, error) {
	month := f.month
	switch {
	case f.thisMonth:
		month = reports.ThisMonth
	case f.lastMonth:
		month = reports.LastMonth
	}

	sel := reports.Selection{Month: reports.RelativeMonth(month, at)}
	if sel.Month != reports.AllMonths && !transaction.IsMonthKey(sel.Month) {
		return reports.Selection{}, errors.Errorf("invalid month %q, expected YYYY-MM, this, last or all", sel.Month)
	}
	if f.date != "" {
		date, err := transaction.NormalizeDate(f.date)
		if err != nil {
			return reports.Selection{}, err
		}
		sel.Date = date
	}
	return sel, nil
}

func listCmd(a *app) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions and their balance",
		Args:  cobra.NoArgs,
		RunE: a.withLedger(func(cmd *cobra.Command, _ []string) error {
			sel, err := flags.selection(a.now())
			if err != nil {
				return err
			}
			report := reports.NewGenerator(a.ledger).GenerateReport(cmd.Context(), sel)
			return writeReport(cmd.OutOrStdout(), report)
		}),
	}
	flags.register(cmd)

	return cmd
}

func balanceCmd(a *app) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show incomes, expenses and total",
		Args:  cobra.NoArgs,
		RunE: a.withLedger(func(cmd *cobra.Command, _ []string) error {
			sel, err := flags.selection(a.now())
			if err != nil {
				return err
			}
			report := reports.NewGenerator(a.ledger).GenerateReport(cmd.Context(), sel)
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintln(out, titleStyle.Render(selectionTitle(report.Selection))); err != nil {
				return err
			}
			return writeSummary(out, report.Summary)
		}),
	}
	flags.register(cmd)

	return cmd
}

func monthsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that have transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: a.withLedger(func(cmd *cobra.Command, _ []string) error {
			for _, m := range reports.Months(a.ledger.Query()) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, transaction.MonthLabel(m)); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func selectionTitle(sel reports.Selection) string {
	switch {
	case sel.Date != "":
		return "📅 " + sel.Date
	case sel.Month != "" && sel.Month != reports.AllMonths:
		return "🗓 " + transaction.MonthLabel(sel.Month)
	default:
		return "🗓 All months"
	}
}

func styleAmount(amount int64) string {
	if amount < 0 {
		return expenseStyle.Render(transaction.FormatAmount(amount))
	}
	return incomeStyle.Render(transaction.FormatAmount(amount))
}

func writeReport(out io.Writer, report reports.Report) error {
	if _, err := fmt.Fprintln(out, titleStyle.Render(selectionTitle(report.Selection))); err != nil {
		return err
	}

	if len(report.Records) == 0 {
		if _, err := fmt.Fprintln(out, "No transactions"); err != nil {
			return err
		}
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTIME\tDESCRIPTION\tAMOUNT")
		for _, r := range report.Records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Date, r.Time, r.Description, styleAmount(r.Amount))
		}
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "flush table")
		}
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return writeSummary(out, report.Summary)
}

func writeSummary(out io.Writer, s reports.Summary) error {
	_, err := fmt.Fprintf(out, "Incomes:  %s\nExpenses: %s\nTotal:    %s\n",
		incomeStyle.Render(transaction.FormatAmount(s.Incomes)),
		expenseStyle.Render(transaction.FormatAmount(s.Expenses)),
		styleAmount(s.Total))
	return err
}
