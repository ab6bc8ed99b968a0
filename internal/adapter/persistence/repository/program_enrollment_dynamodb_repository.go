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
	defaultEnrollmentsTableName = "program_enrollments"
	enrollmentsStudentIndex     = "student-index"
)

type programEnrollmentItem struct {
	ID             string `dynamodbav:"id"`
	Student        string `dynamodbav:"student"`
	StudentName    string `dynamodbav:"student_name,omitempty"`
	Program        string `dynamodbav:"program"`
	AcademicYear   string `dynamodbav:"academic_year"`
	AcademicTerm   string `dynamodbav:"academic_term,omitempty"`
	StudentGroup   string `dynamodbav:"student_group,omitempty"`
	EnrollmentDate string `dynamodbav:"enrollment_date"`

	ContactDateOfBirth string `dynamodbav:"custom_data_nascimento,omitempty"`
	ContactPhone       string `dynamodbav:"custom_telefone,omitempty"`
	ContactEmail       string `dynamodbav:"custom_email,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProgramEnrollmentDynamoRepository persists Program Enrollment records
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student-index (PK: student)
//
// The GSI plus a program filter resolves the (student, program) natural
// pair for the update branch of find-or-create.

type ProgramEnrollmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProgramEnrollmentRepository = (*ProgramEnrollmentDynamoRepository)(nil)

func NewProgramEnrollmentDynamoRepository(ddb *dynamodb.Client) *ProgramEnrollmentDynamoRepository {
	return &ProgramEnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROGRAM_ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

func (r *ProgramEnrollmentDynamoRepository) Insert(ctx context.Context, e entities.ProgramEnrollment) (entities.ProgramEnrollment, error) {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toProgramEnrollmentItem(e))
	if err != nil {
		return entities.ProgramEnrollment{}, err
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
		return entities.ProgramEnrollment{}, err
	}
	return e, nil
}

func (r *ProgramEnrollmentDynamoRepository) GetByStudentAndProgram(ctx context.Context, studentID, programID string) (entities.ProgramEnrollment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(enrollmentsStudentIndex),
		KeyConditionExpression: aws.String("student = :sid"),
		FilterExpression:       aws.String("program = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: studentID},
			":pid": &types.AttributeValueMemberS{Value: programID},
		},
	})
	if err != nil {
		return entities.ProgramEnrollment{}, err
	}
	if len(out.Items) == 0 {
		return entities.ProgramEnrollment{}, nil
	}

	var it programEnrollmentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ProgramEnrollment{}, err
	}
	return fromProgramEnrollmentItem(it), nil
}

func (r *ProgramEnrollmentDynamoRepository) Save(ctx context.Context, e entities.ProgramEnrollment) (entities.ProgramEnrollment, error) {
	e.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toProgramEnrollmentItem(e))
	if err != nil {
		return entities.ProgramEnrollment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ProgramEnrollment{}, err
	}
	return e, nil
}

func toProgramEnrollmentItem(e entities.ProgramEnrollment) programEnrollmentItem {
	return programEnrollmentItem{
		ID:                 e.ID,
		Student:            e.Student,
		StudentName:        e.StudentName,
		Program:            e.Program,
		AcademicYear:       e.AcademicYear,
		AcademicTerm:       e.AcademicTerm,
		StudentGroup:       e.StudentGroup,
		EnrollmentDate:     timeToString(e.EnrollmentDate),
		ContactDateOfBirth: timeToString(e.ContactDateOfBirth),
		ContactPhone:       e.ContactPhone,
		ContactEmail:       e.ContactEmail,
		CreatedAt:          timeToString(e.CreatedAt),
		UpdatedAt:          timeToString(e.UpdatedAt),
	}
}

func fromProgramEnrollmentItem(it programEnrollmentItem) entities.ProgramEnrollment {
	return entities.ProgramEnrollment{
		ID:                 it.ID,
		Student:            it.Student,
		StudentName:        it.StudentName,
		Program:            it.Program,
		AcademicYear:       it.AcademicYear,
		AcademicTerm:       it.AcademicTerm,
		StudentGroup:       it.StudentGroup,
		EnrollmentDate:     stringToTime(it.EnrollmentDate),
		ContactDateOfBirth: stringToTime(it.ContactDateOfBirth),
		ContactPhone:       it.ContactPhone,
		ContactEmail:       it.ContactEmail,
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
	}
}
