package repository

import (
	"context"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInterviewsTableName = "interviews"

// InterviewDynamoRepository removes interview records in DynamoDB.
//
// Table requirements:
//   - PK: intake_id (string)
//   - SK: slot (string)

type InterviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInterviewRepository = (*InterviewDynamoRepository)(nil)

func NewInterviewDynamoRepository(ddb *dynamodb.Client) *InterviewDynamoRepository {
	return &InterviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INTERVIEWS_TABLE", defaultInterviewsTableName),
	}
}

// DeleteForSlot is idempotent: deleting an interview that does not
// exist is not an error.
func (r *InterviewDynamoRepository) DeleteForSlot(ctx context.Context, intakeID string, slot entities.SlotKey) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"intake_id": &types.AttributeValueMemberS{Value: intakeID},
			"slot":      &types.AttributeValueMemberS{Value: string(slot)},
		},
	})
	return err
}
