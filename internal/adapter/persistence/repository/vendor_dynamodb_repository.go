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

const defaultVendorsTableName = "vendors"

type vendorItem struct {
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// VendorDynamoRepository persists Vendor entities in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// The name doubles as the identity: outsourcing a job upserts the vendor by
// name, so repeated assignments to the same shop reuse one record.
type VendorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client) *VendorDynamoRepository {
	return &VendorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENDORS_TABLE", defaultVendorsTableName),
	}
}

func (r *VendorDynamoRepository) Upsert(ctx context.Context, v entities.Vendor) (entities.Vendor, error) {
	existing, err := r.GetByName(ctx, v.Name)
	if err != nil {
		return entities.Vendor{}, err
	}
	if existing.Name != "" {
		v.CreatedAt = existing.CreatedAt
		if v.Phone == "" {
			v.Phone = existing.Phone
		}
	}

	av, err := attributevalue.MarshalMap(toVendorItem(v))
	if err != nil {
		return entities.Vendor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) GetByName(ctx context.Context, name string) (entities.Vendor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vendor{}, nil
	}

	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func toVendorItem(v entities.Vendor) vendorItem {
	return vendorItem{
		Name:      v.Name,
		Phone:     v.Phone,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		Name:      it.Name,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
