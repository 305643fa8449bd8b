package request

import (
	"encoding/json"
	"strings"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase"
)

// BreakdownItemRequest is one labeled amount line on a payment. Lines with
// both fields empty are dropped during conversion.
type BreakdownItemRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// PaymentRequest settles a job and moves it to delivered.
//
// GatewayPayload is an optional raw provider body; when present the balance
// due is charged online before the job is reconciled.
type PaymentRequest struct {
	Type           string                 `json:"type" binding:"required"`
	DiscountAmount string                 `json:"discount_amount"`
	Mode           string                 `json:"mode" binding:"required"`
	Items          []BreakdownItemRequest `json:"items"`
	Warranty       string                 `json:"warranty"`
	GatewayPayload json.RawMessage        `json:"gateway_payload,omitempty"`
}

func (r PaymentRequest) ToParams() (usecase.CollectPaymentParams, error) {
	typ := entities.PaymentType(strings.TrimSpace(r.Type))

	discount, err := parseMoney(r.DiscountAmount, typ == entities.PaymentTypeDiscount)
	if err != nil {
		return usecase.CollectPaymentParams{}, err
	}

	items := make([]entities.BreakdownItem, 0, len(r.Items))
	for _, it := range r.Items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" && strings.TrimSpace(it.Amount) == "" {
			continue
		}
		amount, err := parseMoney(it.Amount, false)
		if err != nil {
			return usecase.CollectPaymentParams{}, err
		}
		items = append(items, entities.BreakdownItem{Description: desc, Amount: amount})
	}

	return usecase.CollectPaymentParams{
		Type:           typ,
		DiscountAmount: discount,
		Mode:           r.Mode,
		Items:          items,
		Warranty:       r.Warranty,
		GatewayPayload: r.GatewayPayload,
	}, nil
}

// ReturnRequest closes a job as returned, either without repair or against a
// service charge.
type ReturnRequest struct {
	Type          string `json:"type" binding:"required"`
	ServiceCharge string `json:"service_charge"`
	Note          string `json:"note"`
}

func (r ReturnRequest) ToParams() (usecase.ReturnOrderParams, error) {
	typ := entities.ReturnType(strings.TrimSpace(r.Type))

	charge, err := parseMoney(r.ServiceCharge, typ == entities.ReturnTypeServiceCharge)
	if err != nil {
		return usecase.ReturnOrderParams{}, err
	}

	return usecase.ReturnOrderParams{
		Type:          typ,
		ServiceCharge: charge,
		Note:          r.Note,
	}, nil
}
