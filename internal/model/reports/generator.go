package reports

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/logger"
)

type ledgerReader interface {
	Query() []transaction.Record
}

// Report is everything a front-end renders for one selection.
type Report struct {
	Selection Selection
	Records   []transaction.Record
	Summary   Summary
	Months    []string
}

type Generator struct {
	ledger ledgerReader
}

func NewGenerator(ledger ledgerReader) *Generator {
	return &Generator{ledger: ledger}
}

// GenerateReport recomputes the view from the current ledger contents. The
// month of sel is reset to AllMonths when it no longer has records, and
// the returned Selection reflects that.
func (g *Generator) GenerateReport(ctx context.Context, sel Selection) Report {
	span, _ := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	all := g.ledger.Query()
	months := Months(all)
	if sel.Month != "" {
		sel.Month = ResolveMonth(sel.Month, months)
	}

	filtered := Filter(all, sel)
	logger.Debug("report generated",
		zap.String("date", sel.Date),
		zap.String("month", sel.Month),
		zap.Int("records", len(filtered)))

	return Report{
		Selection: sel,
		Records:   filtered,
		Summary:   Summarize(filtered),
		Months:    months,
	}
}
