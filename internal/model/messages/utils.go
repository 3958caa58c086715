package messages

import (
	"fmt"
	"strings"

	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/model/reports"
)

const (
	commandParts          = 2
	noTransactionsMessage = "You have no transactions yet"
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(text, "/") {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func formatRecord(r transaction.Record) string {
	when := r.Date
	if r.HasTime() {
		when += " " + r.Time
	}
	return fmt.Sprintf("%s %s: %s", when, r.Description, transaction.FormatAmount(r.Amount))
}

func formatSummary(s reports.Summary) string {
	return fmt.Sprintf("Incomes: %s\nExpenses: %s\nTotal: %s",
		transaction.FormatAmount(s.Incomes), transaction.FormatAmount(s.Expenses), transaction.FormatAmount(s.Total))
}

func formatSelection(sel reports.Selection) string {
	switch {
	case strings.TrimSpace(sel.Date) != "":
		return "📅 " + sel.Date
	case sel.Month != "" && sel.Month != reports.AllMonths:
		return "🗓 " + transaction.MonthLabel(sel.Month)
	default:
		return "🗓 All months"
	}
}

func formatMonths(months []string) string {
	res := make([]string, 0, len(months))
	for _, m := range months {
		res = append(res, fmt.Sprintf("%s (%s)", m, transaction.MonthLabel(m)))
	}
	return strings.Join(res, "\n")
}

func formatReport(report reports.Report) string {
	res := make([]string, 0, len(report.Records)+4)
	res = append(res, formatSelection(report.Selection))
	if len(report.Records) == 0 {
		res = append(res, noTransactionsMessage)
	}
	for _, r := range report.Records {
		res = append(res, fmt.Sprintf("#%d %s", r.ID, formatRecord(r)))
	}
	res = append(res, "", formatSummary(report.Summary))
	return strings.Join(res, "\n")
}
