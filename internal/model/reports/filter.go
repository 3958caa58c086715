package reports

import (
	"strings"

	"max.ks1230/finances-ledger/internal/entity/transaction"
)

// AllMonths is the month selection that disables month filtering.
const AllMonths = "all"

// Selection is what the user picked to narrow the ledger down. Both fields
// may be set at once; a non-blank Date always wins over Month.
type Selection struct {
	Date  string
	Month string
}

func (s Selection) byDate() bool {
	return strings.TrimSpace(s.Date) != ""
}

func (s Selection) byMonth() bool {
	return !s.byDate() && s.Month != "" && s.Month != AllMonths
}

// Filter returns the records matching sel in ledger order. records is never
// modified.
func Filter(records []transaction.Record, sel Selection) []transaction.Record {
	res := make([]transaction.Record, 0, len(records))
	switch {
	case sel.byDate():
		date := strings.TrimSpace(sel.Date)
		for _, r := range records {
			if r.Date == date {
				res = append(res, r)
			}
		}
	case sel.byMonth():
		for _, r := range records {
			if r.MonthKey() == sel.Month {
				res = append(res, r)
			}
		}
	default:
		res = append(res, records...)
	}
	return res
}
