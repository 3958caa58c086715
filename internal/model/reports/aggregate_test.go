package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/finances-ledger/internal/entity/transaction"
)

func Test_Aggregates_ShouldSplitBySign(t *testing.T) {
	records := []transaction.Record{salary, rent, gift, refund}

	assert.Equal(t, int64(502500), Incomes(records))
	assert.Equal(t, int64(-150000), Expenses(records))
	assert.Equal(t, int64(352500), Total(records))
}

func Test_Aggregates_TotalShouldEqualIncomesPlusExpenses(t *testing.T) {
	sets := [][]transaction.Record{
		nil,
		{},
		{refund},
		{rent},
		{salary, rent, gift, refund},
		{{Amount: 1}, {Amount: -1}, {Amount: 1}, {Amount: -3}},
	}
	for _, set := range sets {
		s := Summarize(set)
		assert.Equal(t, Incomes(set)+Expenses(set), Total(set))
		assert.Equal(t, s.Incomes+s.Expenses, s.Total)
		assert.LessOrEqual(t, s.Expenses, int64(0))
		assert.GreaterOrEqual(t, s.Incomes, int64(0))
	}
	assert.Equal(t, Summary{}, Summarize(nil))
}
