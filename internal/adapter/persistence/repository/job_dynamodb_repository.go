package repository

import (
	"context"
	"errors"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultJobsTableName = "jobs"

type statusEntryItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Note      string `dynamodbav:"note,omitempty"`
}

type outsourcedItem struct {
	VendorName  string `dynamodbav:"vendor_name"`
	VendorPhone string `dynamodbav:"vendor_phone,omitempty"`
	Cost        string `dynamodbav:"cost"`
	AssignedAt  string `dynamodbav:"assigned_at"`
}

type imageRefsItem struct {
	Before []string `dynamodbav:"before,omitempty"`
	After  []string `dynamodbav:"after,omitempty"`
}

type jobItem struct {
	ID           string `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customer_name"`
	Phone        string `dynamodbav:"phone"`

	DeviceType string `dynamodbav:"device_type"`
	Brand      string `dynamodbav:"brand,omitempty"`
	Model      string `dynamodbav:"model,omitempty"`
	Issue      string `dynamodbav:"issue,omitempty"`

	ServiceType       string `dynamodbav:"service_type"`
	Address           string `dynamodbav:"address,omitempty"`
	VisitDate         string `dynamodbav:"visit_date,omitempty"`
	EstimatedDelivery string `dynamodbav:"estimated_delivery,omitempty"`

	Status string `dynamodbav:"status"`

	TotalAmount   string `dynamodbav:"total_amount"`
	AdvanceAmount string `dynamodbav:"advance_amount"`

	IsWarranty bool   `dynamodbav:"is_warranty"`
	Warranty   string `dynamodbav:"warranty,omitempty"`

	Outsourced *outsourcedItem `dynamodbav:"outsourced,omitempty"`

	Images imageRefsItem `dynamodbav:"images,omitempty"`

	StatusHistory []statusEntryItem `dynamodbav:"status_history"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (money fields, outsourced sub-record, status history)
// is one item, so a single conditional PutItem gives the all-or-nothing write
// the lifecycle operations need. The condition on updated_at rejects writes
// whose pre-state was read before a concurrent commit.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job, expectedUpdatedAt time.Time) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #updated_at = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: formatTime(expectedUpdatedAt)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrStaleWrite
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                j.ID,
		CustomerName:      j.CustomerName,
		Phone:             j.Phone,
		DeviceType:        j.DeviceType,
		Brand:             j.Brand,
		Model:             j.Model,
		Issue:             j.Issue,
		ServiceType:       string(j.ServiceType),
		Address:           j.Address,
		VisitDate:         formatOptionalTime(j.VisitDate),
		EstimatedDelivery: formatOptionalTime(j.EstimatedDelivery),
		Status:            string(j.Status),
		TotalAmount:       j.TotalAmount.String(),
		AdvanceAmount:     j.AdvanceAmount.String(),
		IsWarranty:        j.IsWarranty,
		Warranty:          j.Warranty,
		Images:            imageRefsItem{Before: j.Images.Before, After: j.Images.After},
		CreatedAt:         formatTime(j.CreatedAt),
		UpdatedAt:         formatTime(j.UpdatedAt),
	}

	if j.Outsourced != nil {
		it.Outsourced = &outsourcedItem{
			VendorName:  j.Outsourced.VendorName,
			VendorPhone: j.Outsourced.VendorPhone,
			Cost:        j.Outsourced.Cost.String(),
			AssignedAt:  formatTime(j.Outsourced.AssignedAt),
		}
	}

	it.StatusHistory = make([]statusEntryItem, 0, len(j.StatusHistory))
	for _, e := range j.StatusHistory {
		it.StatusHistory = append(it.StatusHistory, statusEntryItem{
			Status:    string(e.Status),
			Timestamp: formatTime(e.Timestamp),
			Note:      e.Note,
		})
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	j := entities.Job{
		ID:                it.ID,
		CustomerName:      it.CustomerName,
		Phone:             it.Phone,
		DeviceType:        it.DeviceType,
		Brand:             it.Brand,
		Model:             it.Model,
		Issue:             it.Issue,
		ServiceType:       entities.ServiceType(it.ServiceType),
		Address:           it.Address,
		VisitDate:         parseTime(it.VisitDate),
		EstimatedDelivery: parseTime(it.EstimatedDelivery),
		Status:            entities.JobStatus(it.Status),
		TotalAmount:       parseAmount(it.TotalAmount),
		AdvanceAmount:     parseAmount(it.AdvanceAmount),
		IsWarranty:        it.IsWarranty,
		Warranty:          it.Warranty,
		Images:            entities.ImageRefs{Before: it.Images.Before, After: it.Images.After},
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}

	if it.Outsourced != nil {
		j.Outsourced = &entities.Outsourced{
			VendorName:  it.Outsourced.VendorName,
			VendorPhone: it.Outsourced.VendorPhone,
			Cost:        parseAmount(it.Outsourced.Cost),
			AssignedAt:  parseTime(it.Outsourced.AssignedAt),
		}
	}

	j.StatusHistory = make([]entities.StatusEntry, 0, len(it.StatusHistory))
	for _, e := range it.StatusHistory {
		j.StatusHistory = append(j.StatusHistory, entities.StatusEntry{
			Status:    entities.JobStatus(e.Status),
			Timestamp: parseTime(e.Timestamp),
			Note:      e.Note,
		})
	}
	return j
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return formatTime(t)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
