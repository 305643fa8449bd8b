package request

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	d, err := parseMoney(" 249.50 ", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("249.50")) {
		t.Fatalf("expected 249.50, got %s", d.String())
	}

	d, err = parseMoney("", false)
	if err != nil || !d.IsZero() {
		t.Fatalf("expected zero for optional empty, got %s %v", d.String(), err)
	}

	if _, err = parseMoney("", true); !errors.Is(err, ErrInvalidMoney) {
		t.Fatalf("expected ErrInvalidMoney for required empty, got %v", err)
	}
	if _, err = parseMoney("abc", false); !errors.Is(err, ErrInvalidMoney) {
		t.Fatalf("expected ErrInvalidMoney, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-09-02T10:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	got, err = parseDate("2026-09-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	got, err = parseDate("  ")
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for empty, got %v %v", got, err)
	}

	if _, err = parseDate("02/09/2026"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
