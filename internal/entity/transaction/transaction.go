package transaction

import (
	"fmt"
	"strings"
	"time"

	"max.ks1230/finances-ledger/internal/model/customerr"
)

const (
	DateLayout     = "02/01/2006"
	isoDateLayout  = "2006-01-02"
	TimeLayout     = "15:04"
	MonthKeyLayout = "2006-01"
)

// Record is one income (positive Amount) or expense (negative Amount) in
// minor currency units. Records are never modified after creation.
type Record struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
}

func (r Record) IsIncome() bool {
	return r.Amount > 0
}

func (r Record) IsExpense() bool {
	return r.Amount < 0
}

func (r Record) HasTime() bool {
	return r.Time != ""
}

// MonthKey is the YYYY-MM bucket of the record date, or "" for a malformed date.
func (r Record) MonthKey() string {
	key, err := MonthKeyOf(r.Date)
	if err != nil {
		return ""
	}
	return key
}

// Validate checks a record read back from storage.
func (r Record) Validate() error {
	if r.ID <= 0 {
		return customerr.NewValidation("id", "must be positive")
	}
	in := Input{Description: r.Description, Amount: r.Amount, Date: r.Date, Time: r.Time}
	return in.Validate()
}

// Input is a transaction about to be added to a ledger. Time is optional.
type Input struct {
	Description string
	Amount      int64
	Date        string
	Time        string
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return customerr.NewValidation("description", "must not be blank")
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return customerr.NewValidation("date", "expected DD/MM/YYYY, got "+quote(in.Date))
	}
	if in.Time != "" {
		if _, err := time.Parse(TimeLayout, in.Time); err != nil {
			return customerr.NewValidation("time", "expected HH:MM, got "+quote(in.Time))
		}
	}
	return nil
}

func (in Input) Record(id int64) Record {
	return Record{
		ID:          id,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        in.Date,
		Time:        in.Time,
	}
}

// MonthKeyOf maps a DD/MM/YYYY date onto its YYYY-MM key. Keys sort
// lexicographically in chronological order.
func MonthKeyOf(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", customerr.NewValidation("date", "expected DD/MM/YYYY, got "+quote(date))
	}
	return d.Format(MonthKeyLayout), nil
}

// MonthKeyFor returns the key of the month t falls in.
func MonthKeyFor(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// NormalizeDate accepts YYYY-MM-DD or DD/MM/YYYY and returns DD/MM/YYYY.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, isoDateLayout} {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(DateLayout), nil
		}
	}
	return "", customerr.NewValidation("date", "expected YYYY-MM-DD or DD/MM/YYYY, got "+quote(s))
}

// MonthLabel renders a month key for people: "2024-06" -> "June 2024".
// Malformed keys are returned unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// IsMonthKey reports whether s is a well formed YYYY-MM key.
func IsMonthKey(s string) bool {
	_, err := time.Parse(MonthKeyLayout, s)
	return err == nil
}

// FormatAmount renders minor units as a signed decimal: -150000 -> "-1500.00".
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

func quote(s string) string {
	return `"` + s + `"`
}
