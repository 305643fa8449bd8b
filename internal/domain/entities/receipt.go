package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReceipt records one successful collect-payment event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Provider payload:
//   - ProviderResponseRaw keeps the original gateway body (JSON) for
//     traceability/audit when the payment was charged online.
type PaymentReceipt struct {
	ID    string    `json:"id"`
	JobID string    `json:"job_id"`
	Date  time.Time `json:"date"`

	Mode            string          `json:"mode"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AppliedDiscount decimal.Decimal `json:"applied_discount"`
	Note            string          `json:"note"`

	ProviderPaymentID   string          `json:"provider_payment_id,omitempty"`
	ProviderStatus      string          `json:"provider_status,omitempty"`
	ProviderResponseRaw json.RawMessage `json:"provider_response_raw,omitempty"`
}
