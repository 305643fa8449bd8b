package response

import (
	"time"

	"repairdesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ReceiptResponse struct {
	ID    string    `json:"id"`
	JobID string    `json:"job_id"`
	Date  time.Time `json:"date"`

	Mode            string          `json:"mode"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AppliedDiscount decimal.Decimal `json:"applied_discount"`
	Note            string          `json:"note"`

	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	ProviderStatus    string `json:"provider_status,omitempty"`
}

func FromReceipt(p entities.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                p.ID,
		JobID:             p.JobID,
		Date:              p.Date,
		Mode:              p.Mode,
		AmountPaid:        p.AmountPaid,
		AppliedDiscount:   p.AppliedDiscount,
		Note:              p.Note,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func FromReceipts(items []entities.PaymentReceipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromReceipt(p))
	}
	return out
}
