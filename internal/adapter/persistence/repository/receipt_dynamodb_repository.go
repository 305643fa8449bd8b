package repository

import (
	"context"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReceiptsTableName = "receipts"
	receiptsJobIDIndex       = "job_id-index"
)

type receiptItem struct {
	ID    string `dynamodbav:"id"`
	JobID string `dynamodbav:"job_id"`
	Date  string `dynamodbav:"date"`

	Mode            string `dynamodbav:"mode"`
	AmountPaid      string `dynamodbav:"amount_paid"`
	AppliedDiscount string `dynamodbav:"applied_discount"`
	Note            string `dynamodbav:"note,omitempty"`

	ProviderPaymentID   string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus      string `dynamodbav:"provider_status,omitempty"`
	ProviderResponseRaw string `dynamodbav:"provider_response_raw,omitempty"`
}

// ReceiptDynamoRepository persists PaymentReceipt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
type ReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentReceiptRepository = (*ReceiptDynamoRepository)(nil)

func NewReceiptDynamoRepository(ddb *dynamodb.Client) *ReceiptDynamoRepository {
	return &ReceiptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
	}
}

func (r *ReceiptDynamoRepository) Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	av, err := attributevalue.MarshalMap(toReceiptItem(p))
	if err != nil {
		return entities.PaymentReceipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *ReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentReceipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentReceipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentReceipt{}, nil
	}

	var it receiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentReceipt{}, err
	}
	return fromReceiptItem(it), nil
}

func (r *ReceiptDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.PaymentReceipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receiptsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentReceipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it receiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReceiptItem(it))
	}
	return items, nil
}

func toReceiptItem(p entities.PaymentReceipt) receiptItem {
	return receiptItem{
		ID:                  p.ID,
		JobID:               p.JobID,
		Date:                formatTime(p.Date),
		Mode:                p.Mode,
		AmountPaid:          p.AmountPaid.String(),
		AppliedDiscount:     p.AppliedDiscount.String(),
		Note:                p.Note,
		ProviderPaymentID:   p.ProviderPaymentID,
		ProviderStatus:      p.ProviderStatus,
		ProviderResponseRaw: string(p.ProviderResponseRaw),
	}
}

func fromReceiptItem(it receiptItem) entities.PaymentReceipt {
	p := entities.PaymentReceipt{
		ID:                it.ID,
		JobID:             it.JobID,
		Date:              parseTime(it.Date),
		Mode:              it.Mode,
		AmountPaid:        parseAmount(it.AmountPaid),
		AppliedDiscount:   parseAmount(it.AppliedDiscount),
		Note:              it.Note,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
	if it.ProviderResponseRaw != "" {
		p.ProviderResponseRaw = []byte(it.ProviderResponseRaw)
	}
	return p
}
