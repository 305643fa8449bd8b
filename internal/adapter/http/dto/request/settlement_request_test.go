package request

import (
	"errors"
	"testing"

	"repairdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestPaymentRequest_ToParams(t *testing.T) {
	t.Run("discount requires amount", func(t *testing.T) {
		r := PaymentRequest{Type: "discount", Mode: "cash"}
		if _, err := r.ToParams(); !errors.Is(err, ErrInvalidMoney) {
			t.Fatalf("expected ErrInvalidMoney, got %v", err)
		}
	})

	t.Run("full ignores empty discount", func(t *testing.T) {
		r := PaymentRequest{Type: "full", Mode: "cash"}
		p, err := r.ToParams()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Type != entities.PaymentTypeFull || !p.DiscountAmount.IsZero() {
			t.Fatalf("unexpected params: %+v", p)
		}
	})

	t.Run("blank items dropped", func(t *testing.T) {
		r := PaymentRequest{
			Type: "full",
			Mode: "cash",
			Items: []BreakdownItemRequest{
				{Description: "", Amount: ""},
				{Description: " Screen ", Amount: "700"},
			},
		}
		p, err := r.ToParams()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(p.Items))
		}
		if p.Items[0].Description != "Screen" || !p.Items[0].Amount.Equal(decimal.NewFromInt(700)) {
			t.Fatalf("unexpected item: %+v", p.Items[0])
		}
	})

	t.Run("malformed item amount", func(t *testing.T) {
		r := PaymentRequest{Type: "full", Mode: "cash", Items: []BreakdownItemRequest{{Description: "Screen", Amount: "lots"}}}
		if _, err := r.ToParams(); !errors.Is(err, ErrInvalidMoney) {
			t.Fatalf("expected ErrInvalidMoney, got %v", err)
		}
	})
}

func TestReturnRequest_ToParams(t *testing.T) {
	t.Run("service charge requires amount", func(t *testing.T) {
		r := ReturnRequest{Type: "service-charge"}
		if _, err := r.ToParams(); !errors.Is(err, ErrInvalidMoney) {
			t.Fatalf("expected ErrInvalidMoney, got %v", err)
		}
	})

	t.Run("without repair needs no charge", func(t *testing.T) {
		r := ReturnRequest{Type: "without-repair", Note: "customer declined"}
		p, err := r.ToParams()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Type != entities.ReturnTypeWithoutRepair || p.Note != "customer declined" {
			t.Fatalf("unexpected params: %+v", p)
		}
	})

	t.Run("service charge parsed", func(t *testing.T) {
		r := ReturnRequest{Type: "service-charge", ServiceCharge: "150"}
		p, err := r.ToParams()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.ServiceCharge.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("expected 150, got %s", p.ServiceCharge.String())
		}
	})
}

func TestUpdateJobRequest_ToParams(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		p, err := UpdateJobRequest{}.ToParams()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CustomerName != nil || p.TotalAmount != nil || p.Status != nil || p.VisitDate != nil {
			t.Fatalf("expected nil fields, got %+v", p)
		}
	})

	t.Run("present fields converted", func(t *testing.T) {
		total := "600"
		status := "ready"
		visit := "2026-09-02"
		r := UpdateJobRequest{TotalAmount: &total, Status: &status, VisitDate: &visit}
		p, err := r.ToParams()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.TotalAmount == nil || !p.TotalAmount.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("unexpected total: %+v", p.TotalAmount)
		}
		if p.Status == nil || *p.Status != entities.JobStatusReady {
			t.Fatalf("unexpected status: %+v", p.Status)
		}
		if p.VisitDate == nil || p.VisitDate.IsZero() {
			t.Fatalf("unexpected visit date: %+v", p.VisitDate)
		}
	})

	t.Run("malformed amount", func(t *testing.T) {
		bad := "abc"
		r := UpdateJobRequest{TotalAmount: &bad}
		if _, err := r.ToParams(); !errors.Is(err, ErrInvalidMoney) {
			t.Fatalf("expected ErrInvalidMoney, got %v", err)
		}
	})
}
