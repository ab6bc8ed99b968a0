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
	defaultIntakesTableName = "intakes"
	intakesStudentLinkIndex = "student_link-index"
)

type courseSlotItem struct {
	StudentGroup string `dynamodbav:"student_group"`
	StartDate    string `dynamodbav:"start_date"`
	MinAge       int    `dynamodbav:"min_age"`
	MaxAge       int    `dynamodbav:"max_age"`
	AgeOK        bool   `dynamodbav:"age_ok"`
	Schooling    string `dynamodbav:"schooling"`
	Segment      string `dynamodbav:"segment"`
	Interview    bool   `dynamodbav:"interview"`
	Senai        bool   `dynamodbav:"senai"`
}

type intakeItem struct {
	ID          string `dynamodbav:"id"`
	FullName    string `dynamodbav:"full_name"`
	CPF         string `dynamodbav:"cpf"`
	DateOfBirth string `dynamodbav:"date_of_birth"`
	Phone       string `dynamodbav:"phone"`
	Email       string `dynamodbav:"email"`
	CEP         string `dynamodbav:"cep"`
	Numero      string `dynamodbav:"numero"`
	Gender      string `dynamodbav:"gender"`
	Age         int    `dynamodbav:"age"`

	IsMT bool `dynamodbav:"is_mt"`
	IsSF bool `dynamodbav:"is_sf"`
	IsGE bool `dynamodbav:"is_ge"`
	IsEP bool `dynamodbav:"is_ep"`
	IsCB bool `dynamodbav:"is_cb"`

	GestanteGroup string `dynamodbav:"gestante_group,omitempty"`

	Slots map[string]courseSlotItem `dynamodbav:"slots,omitempty"`

	MundoTrabalho bool `dynamodbav:"mundo_trabalho"`
	SocioFamiliar bool `dynamodbav:"socio_familiar"`

	Status string `dynamodbav:"status"`

	CustomerLink string `dynamodbav:"customer_link,omitempty"`
	StudentLink  string `dynamodbav:"student_link,omitempty"`
	GestanteLink string `dynamodbav:"gestante_link,omitempty"`
	CriancaLink  string `dynamodbav:"crianca_link,omitempty"`

	ProgramEnrollment string `dynamodbav:"program_enrollment,omitempty"`
	Program           string `dynamodbav:"program,omitempty"`
	EnrollmentDate    string `dynamodbav:"enrollment_date,omitempty"`

	ApplicationDate string `dynamodbav:"application_date,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// IntakeDynamoRepository persists Intake records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_link-index (PK: student_link)
//
// The GSI feeds the status cascade: all intakes pointing at the same
// Student are retrieved by one Query.

type IntakeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIntakeRepository = (*IntakeDynamoRepository)(nil)

func NewIntakeDynamoRepository(ddb *dynamodb.Client) *IntakeDynamoRepository {
	return &IntakeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INTAKES_TABLE", defaultIntakesTableName),
	}
}

func (r *IntakeDynamoRepository) Create(ctx context.Context, in entities.Intake) (entities.Intake, error) {
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	av, err := attributevalue.MarshalMap(toIntakeItem(in))
	if err != nil {
		return entities.Intake{}, err
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
		return entities.Intake{}, err
	}
	return in, nil
}

func (r *IntakeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Intake, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Intake{}, err
	}
	if len(out.Item) == 0 {
		return entities.Intake{}, nil
	}

	var it intakeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Intake{}, err
	}
	return fromIntakeItem(it), nil
}

func (r *IntakeDynamoRepository) Save(ctx context.Context, in entities.Intake) (entities.Intake, error) {
	in.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toIntakeItem(in))
	if err != nil {
		return entities.Intake{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Intake{}, err
	}
	return in, nil
}

func (r *IntakeDynamoRepository) ListByStudentLink(ctx context.Context, studentID string, excludeStatus entities.IntakeStatus) ([]entities.Intake, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(intakesStudentLinkIndex),
		KeyConditionExpression: aws.String("student_link = :sid"),
		FilterExpression:       aws.String("#status <> :excl"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":  &types.AttributeValueMemberS{Value: studentID},
			":excl": &types.AttributeValueMemberS{Value: string(excludeStatus)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Intake, 0, len(out.Items))
	for _, raw := range out.Items {
		var it intakeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromIntakeItem(it))
	}
	return items, nil
}

func toIntakeItem(in entities.Intake) intakeItem {
	var slots map[string]courseSlotItem
	if len(in.Slots) > 0 {
		slots = make(map[string]courseSlotItem, len(in.Slots))
		for key, s := range in.Slots {
			slots[string(key)] = courseSlotItem{
				StudentGroup: s.StudentGroup,
				StartDate:    timeToString(s.StartDate),
				MinAge:       s.MinAge,
				MaxAge:       s.MaxAge,
				AgeOK:        s.AgeOK,
				Schooling:    s.Schooling,
				Segment:      s.Segment,
				Interview:    s.Interview,
				Senai:        s.Senai,
			}
		}
	}

	return intakeItem{
		ID:                in.ID,
		FullName:          in.FullName,
		CPF:               in.CPF,
		DateOfBirth:       timeToString(in.DateOfBirth),
		Phone:             in.Phone,
		Email:             in.Email,
		CEP:               in.CEP,
		Numero:            in.Numero,
		Gender:            in.Gender,
		Age:               in.Age,
		IsMT:              in.IsMT,
		IsSF:              in.IsSF,
		IsGE:              in.IsGE,
		IsEP:              in.IsEP,
		IsCB:              in.IsCB,
		GestanteGroup:     in.GestanteGroup,
		Slots:             slots,
		MundoTrabalho:     in.MundoTrabalho,
		SocioFamiliar:     in.SocioFamiliar,
		Status:            string(in.Status),
		CustomerLink:      in.CustomerLink,
		StudentLink:       in.StudentLink,
		GestanteLink:      in.GestanteLink,
		CriancaLink:       in.CriancaLink,
		ProgramEnrollment: in.ProgramEnrollment,
		Program:           in.Program,
		EnrollmentDate:    timeToString(in.EnrollmentDate),
		ApplicationDate:   timeToString(in.ApplicationDate),
		CreatedAt:         timeToString(in.CreatedAt),
		UpdatedAt:         timeToString(in.UpdatedAt),
	}
}

func fromIntakeItem(it intakeItem) entities.Intake {
	var slots map[entities.SlotKey]entities.CourseSlot
	if len(it.Slots) > 0 {
		slots = make(map[entities.SlotKey]entities.CourseSlot, len(it.Slots))
		for key, s := range it.Slots {
			slots[entities.SlotKey(key)] = entities.CourseSlot{
				StudentGroup: s.StudentGroup,
				StartDate:    stringToTime(s.StartDate),
				MinAge:       s.MinAge,
				MaxAge:       s.MaxAge,
				AgeOK:        s.AgeOK,
				Schooling:    s.Schooling,
				Segment:      s.Segment,
				Interview:    s.Interview,
				Senai:        s.Senai,
			}
		}
	}

	return entities.Intake{
		ID:                it.ID,
		FullName:          it.FullName,
		CPF:               it.CPF,
		DateOfBirth:       stringToTime(it.DateOfBirth),
		Phone:             it.Phone,
		Email:             it.Email,
		CEP:               it.CEP,
		Numero:            it.Numero,
		Gender:            it.Gender,
		Age:               it.Age,
		IsMT:              it.IsMT,
		IsSF:              it.IsSF,
		IsGE:              it.IsGE,
		IsEP:              it.IsEP,
		IsCB:              it.IsCB,
		GestanteGroup:     it.GestanteGroup,
		Slots:             slots,
		MundoTrabalho:     it.MundoTrabalho,
		SocioFamiliar:     it.SocioFamiliar,
		Status:            entities.IntakeStatus(it.Status),
		CustomerLink:      it.CustomerLink,
		StudentLink:       it.StudentLink,
		GestanteLink:      it.GestanteLink,
		CriancaLink:       it.CriancaLink,
		ProgramEnrollment: it.ProgramEnrollment,
		Program:           it.Program,
		EnrollmentDate:    stringToTime(it.EnrollmentDate),
		ApplicationDate:   stringToTime(it.ApplicationDate),
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
}
