package transaction

import (
	"math"
	"strconv"
	"strings"

	"max.ks1230/finances-ledger/internal/model/customerr"
)

// Draft is a transaction as typed into a form: every field is raw text and
// every field is required.
type Draft struct {
	Description string
	Amount      string
	Date        string
	Time        string
}

// Parse validates the draft and converts it into an Input.
func (d Draft) Parse() (Input, error) {
	fields := []struct{ name, value string }{
		{"description", d.Description},
		{"amount", d.Amount},
		{"date", d.Date},
		{"time", d.Time},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Input{}, customerr.NewValidation(f.name, "is required")
		}
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return Input{}, err
	}
	date, err := NormalizeDate(d.Date)
	if err != nil {
		return Input{}, err
	}

	in := Input{
		Description: strings.TrimSpace(d.Description),
		Amount:      amount,
		Date:        date,
		Time:        strings.TrimSpace(d.Time),
	}
	return in, in.Validate()
}

// ParseAmount converts a signed decimal string ("12.34", "-12,34", "+5")
// to minor units. Digits past the second decimal are rounded half away
// from zero.
func ParseAmount(s string) (int64, error) {
	invalid := customerr.NewValidation("amount", "expected a decimal number, got "+quote(s))

	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	sign := int64(1)
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, invalid
	}
	intPart, fracPart := parts[0], ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0, invalid
	}
	if intPart == "" {
		intPart = "0"
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, invalid
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || units > math.MaxInt64/100-1 {
		return 0, invalid
	}

	var cents int64
	if len(fracPart) > 0 {
		cents = int64(fracPart[0]-'0') * 10
	}
	if len(fracPart) > 1 {
		cents += int64(fracPart[1] - '0')
	}
	if len(fracPart) > 2 && fracPart[2] >= '5' {
		cents++
	}

	return sign * (units*100 + cents), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
