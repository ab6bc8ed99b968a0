package repository

import (
	"context"
	"time"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customersTaxIDIndex       = "tax_id-index"
)

type customerItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	TaxID        string `dynamodbav:"tax_id"`
	CustomerType string `dynamodbav:"customer_type"`
	DateOfBirth  string `dynamodbav:"date_of_birth"`
	CEP          string `dynamodbav:"cep"`
	Phone        string `dynamodbav:"phone"`
	Email        string `dynamodbav:"email"`
	Gender       string `dynamodbav:"gender,omitempty"`
	Age          int    `dynamodbav:"age"`
	Numero       string `dynamodbav:"numero,omitempty"`

	IsMT bool `dynamodbav:"is_mt"`
	IsSF bool `dynamodbav:"is_sf"`
	IsGE bool `dynamodbav:"is_ge"`
	IsEP bool `dynamodbav:"is_ep"`
	IsCB bool `dynamodbav:"is_cb"`

	Links map[string]string `dynamodbav:"links,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tax_id-index (PK: tax_id)
//
// The GSI resolves the natural key; find-or-create relies on it to keep
// one customer per tax id.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Insert(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByTaxID(ctx context.Context, taxID string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersTaxIDIndex),
		KeyConditionExpression: aws.String("tax_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: taxID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Save(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		CustomerType: c.CustomerType,
		DateOfBirth:  timeToString(c.DateOfBirth),
		CEP:          c.CEP,
		Phone:        c.Phone,
		Email:        c.Email,
		Gender:       c.Gender,
		Age:          c.Age,
		Numero:       c.Numero,
		IsMT:         c.IsMT,
		IsSF:         c.IsSF,
		IsGE:         c.IsGE,
		IsEP:         c.IsEP,
		IsCB:         c.IsCB,
		Links:        c.Links,
		CreatedAt:    timeToString(c.CreatedAt),
		UpdatedAt:    timeToString(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:           it.ID,
		Name:         it.Name,
		TaxID:        it.TaxID,
		CustomerType: it.CustomerType,
		DateOfBirth:  stringToTime(it.DateOfBirth),
		CEP:          it.CEP,
		Phone:        it.Phone,
		Email:        it.Email,
		Gender:       it.Gender,
		Age:          it.Age,
		Numero:       it.Numero,
		IsMT:         it.IsMT,
		IsSF:         it.IsSF,
		IsGE:         it.IsGE,
		IsEP:         it.IsEP,
		IsCB:         it.IsCB,
		Links:        it.Links,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
