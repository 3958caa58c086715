package reports

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/finances-ledger/internal/entity/transaction"
)

// Month selections relative to the current date.
const (
	ThisMonth = "this"
	LastMonth = "last"
)

// Months lists every distinct month key of records, most recent first.
func Months(records []transaction.Record) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		if key := r.MonthKey(); key != "" {
			set[key] = struct{}{}
		}
	}
	res := make([]string, 0, len(set))
	for key := range set {
		res = append(res, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(res)))
	return res
}

// ResolveMonth keeps a month selection only while that month still has
// records; otherwise the selection falls back to AllMonths.
func ResolveMonth(selected string, months []string) string {
	for _, m := range months {
		if m == selected {
			return selected
		}
	}
	return AllMonths
}

// RelativeMonth turns ThisMonth and LastMonth into month keys as seen at t.
// Any other selection is returned unchanged.
func RelativeMonth(selected string, t time.Time) string {
	begin := now.With(t).BeginningOfMonth()
	switch selected {
	case ThisMonth:
		return transaction.MonthKeyFor(begin)
	case LastMonth:
		return transaction.MonthKeyFor(begin.AddDate(0, -1, 0))
	default:
		return selected
	}
}
