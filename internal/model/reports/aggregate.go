package reports

import "max.ks1230/finances-ledger/internal/entity/transaction"

// Summary holds the totals of a set of records, in minor units.
type Summary struct {
	Incomes  int64
	Expenses int64
	Total    int64
}

// Incomes sums the positive amounts.
func Incomes(records []transaction.Record) int64 {
	var sum int64
	for _, r := range records {
		if r.IsIncome() {
			sum += r.Amount
		}
	}
	return sum
}

// Expenses sums the negative amounts; the result is never positive.
func Expenses(records []transaction.Record) int64 {
	var sum int64
	for _, r := range records {
		if r.IsExpense() {
			sum += r.Amount
		}
	}
	return sum
}

func Total(records []transaction.Record) int64 {
	return Incomes(records) + Expenses(records)
}

func Summarize(records []transaction.Record) Summary {
	in, out := Incomes(records), Expenses(records)
	return Summary{Incomes: in, Expenses: out, Total: in + out}
}
