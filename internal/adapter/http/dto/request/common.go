package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMoney = errors.New("invalid monetary value")
	ErrInvalidDate  = errors.New("invalid date")
)

// parseMoney accepts decimal strings ("1000", "249.50"). An empty value is
// zero unless required.
func parseMoney(s string, required bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			return decimal.Zero, ErrInvalidMoney
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidMoney
	}
	return d, nil
}

// parseDate accepts RFC3339 ("2026-09-02T10:00:00Z") or a bare day
// ("2026-09-02"). An empty value is the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
