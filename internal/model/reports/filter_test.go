package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/finances-ledger/internal/entity/transaction"
)

func Test_Filter(t *testing.T) {
	all := []transaction.Record{salary, gift, rent, refund}

	cases := []struct {
		name string
		sel  Selection
		want []transaction.Record
	}{
		{"no selection", Selection{}, all},
		{"all months", Selection{Month: AllMonths}, all},
		{"month", Selection{Month: "2024-06"}, []transaction.Record{salary, rent}},
		{"unknown month", Selection{Month: "1999-01"}, []transaction.Record{}},
		{"date", Selection{Date: "05/06/2024"}, []transaction.Record{rent}},
		{"date beats month", Selection{Date: "17/05/2024", Month: "2024-06"}, []transaction.Record{gift}},
		{"date beats all", Selection{Date: "01/06/2024", Month: AllMonths}, []transaction.Record{salary}},
		{"blank date ignored", Selection{Date: "  ", Month: "2024-05"}, []transaction.Record{gift, refund}},
		{"date without records", Selection{Date: "02/06/2024"}, []transaction.Record{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Filter(all, tc.sel))
		})
	}
}

func Test_Filter_ShouldNotMutateInput(t *testing.T) {
	all := []transaction.Record{salary, rent}

	got := Filter(all, Selection{})
	got[0] = gift

	assert.Equal(t, salary, all[0])
}
