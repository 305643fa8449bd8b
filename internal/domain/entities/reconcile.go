package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Pure money arithmetic for payment collection and returns. None of these
// functions touch persistence; they take the pre-operation amounts and
// produce the post-operation amounts plus the history note.

// PaymentType selects how a collected payment settles the balance.
type PaymentType string

const (
	PaymentTypeFull     PaymentType = "full"
	PaymentTypeDiscount PaymentType = "discount"
)

// ReturnType selects how a returned job is billed.
type ReturnType string

const (
	ReturnTypeWithoutRepair ReturnType = "without-repair"
	ReturnTypeServiceCharge ReturnType = "service-charge"
)

// BreakdownItem is a labeled amount line itemizing what a payment covers.
type BreakdownItem struct {
	Description string
	Amount      decimal.Decimal
}

// PaymentOutcome is the result of reconciling a payment against a job.
type PaymentOutcome struct {
	NewTotal        decimal.Decimal
	NewAdvance      decimal.Decimal
	AmountPaid      decimal.Decimal
	AppliedDiscount decimal.Decimal
	Note            string
}

var discountCapRatio = decimal.NewFromFloat(0.5)

// ClampDiscount limits a requested discount to half the outstanding balance.
// Over-large discounts are adjusted, not rejected.
func ClampDiscount(requested, balance decimal.Decimal) decimal.Decimal {
	cap := balance.Mul(discountCapRatio)
	if requested.GreaterThan(cap) {
		return cap
	}
	return requested
}

// ReconcilePayment computes the post-payment amounts for a job.
//
// full: the advance rises to the total, settling the balance.
// discount: the requested discount is clamped to 50% of the pre-payment
// balance, the total drops by the applied discount, and the advance rises to
// the new total.
func ReconcilePayment(total, advance decimal.Decimal, typ PaymentType, requestedDiscount decimal.Decimal, mode string, items []BreakdownItem) PaymentOutcome {
	balance := total.Sub(advance)

	out := PaymentOutcome{NewTotal: total}
	if typ == PaymentTypeDiscount {
		out.AppliedDiscount = ClampDiscount(requestedDiscount, balance)
		out.NewTotal = total.Sub(out.AppliedDiscount)
	}
	out.NewAdvance = out.NewTotal
	out.AmountPaid = out.NewAdvance.Sub(advance)
	out.Note = PaymentNote(mode, items)
	return out
}

// PaymentNote builds the history/receipt note for a payment event:
// a base note naming the mode, followed by the surviving breakdown lines.
func PaymentNote(mode string, items []BreakdownItem) string {
	note := fmt.Sprintf("Payment collected via %s", mode)

	kept := make([]string, 0, len(items))
	sum := decimal.Zero
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" && it.Amount.IsZero() {
			continue
		}
		kept = append(kept, fmt.Sprintf("%s: ₹%s", strings.TrimSpace(it.Description), it.Amount.String()))
		sum = sum.Add(it.Amount)
	}
	if len(kept) == 0 {
		return note
	}
	return fmt.Sprintf("%s. %s (Total: ₹%s)", note, strings.Join(kept, ", "), sum.String())
}

// ReturnOutcome is the result of closing a job as returned.
type ReturnOutcome struct {
	NewTotal decimal.Decimal
	Note     string
}

// ReconcileReturn computes the final total for a returned job.
//
// without-repair: the total is set to the advance already collected, so the
// customer owes nothing further and the advance is retained.
// service-charge: the total becomes the charge; the advance never changes.
func ReconcileReturn(advance decimal.Decimal, typ ReturnType, serviceCharge decimal.Decimal, extra string) ReturnOutcome {
	var out ReturnOutcome
	switch typ {
	case ReturnTypeServiceCharge:
		out.NewTotal = serviceCharge
		out.Note = fmt.Sprintf("Returned with service charge ₹%s.", serviceCharge.String())
	default:
		out.NewTotal = advance
		out.Note = "Returned without repair."
	}
	if extra = strings.TrimSpace(extra); extra != "" {
		out.Note += " " + extra
	}
	return out
}
