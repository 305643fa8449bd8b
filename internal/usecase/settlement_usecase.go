package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrGatewayNotConfigured       = errors.New("payment gateway not configured")
)

// CollectPaymentParams is the validated input for settling a job.
//
// GatewayPayload, when present, is the raw provider request (e.g. a Mercado
// Pago payment body); the balance due is charged online before the job is
// reconciled and delivered.
type CollectPaymentParams struct {
	Type           entities.PaymentType
	DiscountAmount decimal.Decimal
	Mode           string
	Items          []entities.BreakdownItem
	Warranty       string
	GatewayPayload json.RawMessage
}

// ReturnOrderParams is the validated input for closing a job as returned.
type ReturnOrderParams struct {
	Type          entities.ReturnType
	ServiceCharge decimal.Decimal
	Note          string
}

// ISettlementUseCase holds the money-moving operations: collect a payment
// (job ends delivered) and return/reject a job (job ends returned).

type ISettlementUseCase interface {
	CollectPayment(ctx context.Context, jobID string, params CollectPaymentParams) (entities.Job, error)
	ReturnOrder(ctx context.Context, jobID string, params ReturnOrderParams) (entities.Job, error)
	ListReceiptsByJobID(ctx context.Context, jobID string) ([]entities.PaymentReceipt, error)
}

type SettlementUseCase struct {
	jobs     interfaces.IJobRepository
	receipts interfaces.IPaymentReceiptRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(jobs interfaces.IJobRepository, receipts interfaces.IPaymentReceiptRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier) *SettlementUseCase {
	return &SettlementUseCase{jobs: jobs, receipts: receipts, gateway: gateway, notifier: notifier}
}

func (u *SettlementUseCase) CollectPayment(ctx context.Context, jobID string, params CollectPaymentParams) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	switch params.Type {
	case entities.PaymentTypeFull, entities.PaymentTypeDiscount:
	default:
		return entities.Job{}, ErrInvalidPaymentType
	}
	mode := strings.TrimSpace(params.Mode)
	if mode == "" {
		return entities.Job{}, ErrMissingPaymentMode
	}
	if params.Type == entities.PaymentTypeDiscount && params.DiscountAmount.IsNegative() {
		return entities.Job{}, ErrNegativeDiscount
	}
	for _, it := range params.Items {
		if it.Amount.IsNegative() {
			return entities.Job{}, fmt.Errorf("%w: breakdown amount must not be negative", ErrInvalidAmount)
		}
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	// The transition table already excludes terminal and outsourced sources.
	if !entities.CanTransition(j.Status, entities.JobStatusDelivered) {
		return entities.Job{}, ErrInvalidTransition
	}
	expected := j.UpdatedAt

	outcome := entities.ReconcilePayment(j.TotalAmount, j.AdvanceAmount, params.Type, params.DiscountAmount, mode, params.Items)
	log.Printf("[settlement][usecase] reconcile job_id=%s type=%s amount_paid=%s applied_discount=%s",
		jobID, params.Type, outcome.AmountPaid.String(), outcome.AppliedDiscount.String())

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)
	if len(params.GatewayPayload) > 0 {
		providerPaymentID, providerStatus, providerResp, err = u.chargeGateway(ctx, j.ID, outcome.AmountPaid, params.GatewayPayload)
		if err != nil {
			return entities.Job{}, err
		}
	}

	now := time.Now().UTC()
	j.TotalAmount = outcome.NewTotal
	j.AdvanceAmount = outcome.NewAdvance
	if w := strings.TrimSpace(params.Warranty); w != "" {
		j.Warranty = w
	}
	j.Status = entities.JobStatusDelivered
	j.AppendHistory(entities.JobStatusDelivered, now, outcome.Note)
	j.UpdatedAt = now

	updated, err := u.jobs.Update(ctx, j, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleWrite) {
			return entities.Job{}, ErrConcurrentModification
		}
		return entities.Job{}, err
	}

	// The settlement is committed at this point; the receipt is a secondary
	// record and must not fail the operation.
	receipt := entities.PaymentReceipt{
		ID:                  uuid.NewString(),
		JobID:               updated.ID,
		Date:                now,
		Mode:                mode,
		AmountPaid:          outcome.AmountPaid,
		AppliedDiscount:     outcome.AppliedDiscount,
		Note:                outcome.Note,
		ProviderPaymentID:   providerPaymentID,
		ProviderStatus:      providerStatus,
		ProviderResponseRaw: providerResp,
	}
	if _, err := u.receipts.Create(ctx, receipt); err != nil {
		log.Printf("[settlement][usecase] receipt create failed job_id=%s receipt_id=%s err=%v", updated.ID, receipt.ID, err)
	}

	u.notify(ctx, updated.Phone, fmt.Sprintf("Your %s is delivered. %s", updated.DeviceType, outcome.Note))
	log.Printf("[settlement][usecase] payment collected job_id=%s mode=%s new_total=%s", updated.ID, mode, updated.TotalAmount.String())
	return updated, nil
}

func (u *SettlementUseCase) ReturnOrder(ctx context.Context, jobID string, params ReturnOrderParams) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	switch params.Type {
	case entities.ReturnTypeWithoutRepair, entities.ReturnTypeServiceCharge:
	default:
		return entities.Job{}, ErrInvalidReturnType
	}
	if params.Type == entities.ReturnTypeServiceCharge && params.ServiceCharge.IsNegative() {
		return entities.Job{}, ErrNegativeServiceCharge
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !entities.CanTransition(j.Status, entities.JobStatusReturned) {
		return entities.Job{}, ErrInvalidTransition
	}
	expected := j.UpdatedAt

	outcome := entities.ReconcileReturn(j.AdvanceAmount, params.Type, params.ServiceCharge, params.Note)

	now := time.Now().UTC()
	j.TotalAmount = outcome.NewTotal
	j.Status = entities.JobStatusReturned
	j.AppendHistory(entities.JobStatusReturned, now, outcome.Note)
	j.UpdatedAt = now

	updated, err := u.jobs.Update(ctx, j, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleWrite) {
			return entities.Job{}, ErrConcurrentModification
		}
		return entities.Job{}, err
	}

	u.notify(ctx, updated.Phone, fmt.Sprintf("Your %s was returned. %s", updated.DeviceType, outcome.Note))
	log.Printf("[settlement][usecase] returned job_id=%s type=%s new_total=%s", updated.ID, params.Type, updated.TotalAmount.String())
	return updated, nil
}

func (u *SettlementUseCase) ListReceiptsByJobID(ctx context.Context, jobID string) ([]entities.PaymentReceipt, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.receipts.ListByJobID(ctx, jobID)
}

// chargeGateway enriches the provider payload with the job linkage and the
// amount actually due, then creates the provider payment.
func (u *SettlementUseCase) chargeGateway(ctx context.Context, jobID string, amount decimal.Decimal, payload json.RawMessage) (string, string, json.RawMessage, error) {
	if u.gateway == nil {
		log.Printf("[settlement][usecase] gateway payload supplied but no gateway configured job_id=%s", jobID)
		return "", "", nil, ErrGatewayNotConfigured
	}
	if !json.Valid(payload) {
		return "", "", nil, fmt.Errorf("%w: gateway payload is not valid JSON", ErrInvalidAmount)
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = jobID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Job %s", jobID)
		}
		// The source of truth for the amount is the reconciliation, not the caller.
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[settlement][usecase] calling payment gateway job_id=%s payload_len=%d", jobID, len(payload))
	id, status, resp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[settlement][usecase] payment gateway failed job_id=%s err=%v", jobID, err)
		if isGatewayUnauthorized(err) {
			return "", "", nil, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return "", "", nil, ErrPaymentGatewayBadRequest
		}
		return "", "", nil, err
	}
	log.Printf("[settlement][usecase] payment gateway success job_id=%s provider_payment_id=%s provider_status=%s", jobID, id, status)
	return id, status, resp, nil
}

func (u *SettlementUseCase) notify(ctx context.Context, phone, message string) {
	if u.notifier == nil || phone == "" {
		return
	}
	if err := u.notifier.NotifyStatus(ctx, phone, message); err != nil {
		log.Printf("[settlement][usecase] notify failed phone=%s err=%v", phone, err)
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
