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
	defaultStudentsTableName = "students"
	studentsCPFIndex         = "cpf-index"
)

type studentItem struct {
	ID          string `dynamodbav:"id"`
	FirstName   string `dynamodbav:"first_name"`
	LastName    string `dynamodbav:"last_name,omitempty"`
	Title       string `dynamodbav:"title"`
	CPF         string `dynamodbav:"cpf"`
	Assistido   string `dynamodbav:"assistido,omitempty"`
	DateOfBirth string `dynamodbav:"date_of_birth"`
	Mobile      string `dynamodbav:"mobile_number,omitempty"`
	Email       string `dynamodbav:"student_email_id,omitempty"`
	Gender      string `dynamodbav:"gender,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// StudentDynamoRepository persists Student entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cpf-index (PK: cpf)

type StudentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStudentRepository = (*StudentDynamoRepository)(nil)

func NewStudentDynamoRepository(ddb *dynamodb.Client) *StudentDynamoRepository {
	return &StudentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STUDENTS_TABLE", defaultStudentsTableName),
	}
}

func (r *StudentDynamoRepository) Insert(ctx context.Context, s entities.Student) (entities.Student, error) {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toStudentItem(s))
	if err != nil {
		return entities.Student{}, err
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
		return entities.Student{}, err
	}
	return s, nil
}

func (r *StudentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Student, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Student{}, err
	}
	if len(out.Item) == 0 {
		return entities.Student{}, nil
	}

	var it studentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Student{}, err
	}
	return fromStudentItem(it), nil
}

func (r *StudentDynamoRepository) GetByCPF(ctx context.Context, cpf string) (entities.Student, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(studentsCPFIndex),
		KeyConditionExpression: aws.String("cpf = :cpf"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cpf": &types.AttributeValueMemberS{Value: cpf},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Student{}, err
	}
	if len(out.Items) == 0 {
		return entities.Student{}, nil
	}

	var it studentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Student{}, err
	}
	return fromStudentItem(it), nil
}

func (r *StudentDynamoRepository) Save(ctx context.Context, s entities.Student) (entities.Student, error) {
	s.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toStudentItem(s))
	if err != nil {
		return entities.Student{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Student{}, err
	}
	return s, nil
}

func toStudentItem(s entities.Student) studentItem {
	return studentItem{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Title:       s.Title,
		CPF:         s.CPF,
		Assistido:   s.Assistido,
		DateOfBirth: timeToString(s.DateOfBirth),
		Mobile:      s.Mobile,
		Email:       s.Email,
		Gender:      s.Gender,
		CreatedAt:   timeToString(s.CreatedAt),
		UpdatedAt:   timeToString(s.UpdatedAt),
	}
}

func fromStudentItem(it studentItem) entities.Student {
	return entities.Student{
		ID:          it.ID,
		FirstName:   it.FirstName,
		LastName:    it.LastName,
		Title:       it.Title,
		CPF:         it.CPF,
		Assistido:   it.Assistido,
		DateOfBirth: stringToTime(it.DateOfBirth),
		Mobile:      it.Mobile,
		Email:       it.Email,
		Gender:      it.Gender,
		CreatedAt:   stringToTime(it.CreatedAt),
		UpdatedAt:   stringToTime(it.UpdatedAt),
	}
}
