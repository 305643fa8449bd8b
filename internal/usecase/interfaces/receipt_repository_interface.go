package interfaces

import (
	"context"

	"repairdesk/internal/domain/entities"
)

// IPaymentReceiptRepository abstracts DynamoDB persistence for PaymentReceipt.
type IPaymentReceiptRepository interface {
	Create(ctx context.Context, r entities.PaymentReceipt) (entities.PaymentReceipt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.PaymentReceipt, error)
}
