package repository

import (
	"context"
	"fmt"
	"strings"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStudentGroupsTableName = "student_groups"
	defaultProgramsTableName      = "programs"
	defaultAcademicYearsTableName = "academic_years"
	defaultAcademicTermsTableName = "academic_terms"
)

type studentGroupItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"student_group_name"`
	Program      string `dynamodbav:"program,omitempty"`
	Program2     string `dynamodbav:"program2,omitempty"`
	AcademicYear string `dynamodbav:"academic_year,omitempty"`
	AcademicTerm string `dynamodbav:"academic_term,omitempty"`
	Day          string `dynamodbav:"dia"`
	Afternoon    bool   `dynamodbav:"sab_t"`
	Department   string `dynamodbav:"department,omitempty"`
	Status       string `dynamodbav:"status"`
	MinAge       int    `dynamodbav:"idade_minima"`
	MaxAge       int    `dynamodbav:"idade_maxima"`
	Schooling    string `dynamodbav:"escolaridade,omitempty"`
	Segment      string `dynamodbav:"segmento,omitempty"`
	StartDate    string `dynamodbav:"dt_inicio"`
}

type programItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"program_name"`
}

type academicYearItem struct {
	ID        string `dynamodbav:"id"`
	Disabled  bool   `dynamodbav:"disabled"`
	StartDate string `dynamodbav:"year_start_date,omitempty"`
	EndDate   string `dynamodbav:"year_end_date,omitempty"`
}

// AcademicDynamoRepository reads the academic reference tables. The
// school side of the platform owns these records; this service only
// queries them.
//
// Table requirements (all tables):
//   - PK: id (string)
//
// Group listing scans with a filter expression. The tables hold at most
// a few hundred groups per enrollment season, so a scan stays cheap.

type AcademicDynamoRepository struct {
	ddb         *dynamodb.Client
	groupsTable string
	programs    string
	years       string
	terms       string
}

var _ interfaces.IAcademicRepository = (*AcademicDynamoRepository)(nil)

func NewAcademicDynamoRepository(ddb *dynamodb.Client) *AcademicDynamoRepository {
	return &AcademicDynamoRepository{
		ddb:         ddb,
		groupsTable: getenvDefault("STUDENT_GROUPS_TABLE", defaultStudentGroupsTableName),
		programs:    getenvDefault("PROGRAMS_TABLE", defaultProgramsTableName),
		years:       getenvDefault("ACADEMIC_YEARS_TABLE", defaultAcademicYearsTableName),
		terms:       getenvDefault("ACADEMIC_TERMS_TABLE", defaultAcademicTermsTableName),
	}
}

func (r *AcademicDynamoRepository) GetStudentGroup(ctx context.Context, id string) (entities.StudentGroup, error) {
	item, err := r.getByID(ctx, r.groupsTable, id)
	if err != nil || item == nil {
		return entities.StudentGroup{}, err
	}

	var it studentGroupItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.StudentGroup{}, err
	}
	return fromStudentGroupItem(it), nil
}

func (r *AcademicDynamoRepository) GetProgram(ctx context.Context, id string) (entities.Program, error) {
	item, err := r.getByID(ctx, r.programs, id)
	if err != nil || item == nil {
		return entities.Program{}, err
	}

	var it programItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Program{}, err
	}
	return entities.Program{ID: it.ID, Name: it.Name}, nil
}

func (r *AcademicDynamoRepository) GetAcademicYear(ctx context.Context, id string) (entities.AcademicYear, error) {
	item, err := r.getByID(ctx, r.years, id)
	if err != nil || item == nil {
		return entities.AcademicYear{}, err
	}

	var it academicYearItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.AcademicYear{}, err
	}
	return entities.AcademicYear{
		ID:        it.ID,
		Disabled:  it.Disabled,
		StartDate: stringToTime(it.StartDate),
		EndDate:   stringToTime(it.EndDate),
	}, nil
}

func (r *AcademicDynamoRepository) GetAcademicTerm(ctx context.Context, id string) (entities.AcademicTerm, error) {
	item, err := r.getByID(ctx, r.terms, id)
	if err != nil || item == nil {
		return entities.AcademicTerm{}, err
	}

	var it struct {
		ID string `dynamodbav:"id"`
	}
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.AcademicTerm{}, err
	}
	return entities.AcademicTerm{ID: it.ID}, nil
}

// ListStudentGroups scans the groups table with a filter built from the
// query value object.
func (r *AcademicDynamoRepository) ListStudentGroups(ctx context.Context, q entities.GroupQuery) ([]entities.StudentGroup, error) {
	expr, names, values := buildGroupFilter(q)

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.groupsTable),
		FilterExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	groups := make([]entities.StudentGroup, 0, len(out.Items))
	for _, raw := range out.Items {
		var it studentGroupItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		groups = append(groups, fromStudentGroupItem(it))
	}
	return groups, nil
}

func buildGroupFilter(q entities.GroupQuery) (string, map[string]string, map[string]types.AttributeValue) {
	parts := []string{"#dia = :dia", "#status = :status"}
	names := map[string]string{
		"#dia":    "dia",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":dia":    &types.AttributeValueMemberS{Value: q.Day},
		":status": &types.AttributeValueMemberS{Value: q.Status},
	}

	if q.Afternoon != nil {
		parts = append(parts, "#sab_t = :sab_t")
		names["#sab_t"] = "sab_t"
		values[":sab_t"] = &types.AttributeValueMemberBOOL{Value: *q.Afternoon}
	}
	if q.Program2 != "" {
		parts = append(parts, "#program2 = :program2")
		names["#program2"] = "program2"
		values[":program2"] = &types.AttributeValueMemberS{Value: q.Program2}
	}
	if q.Department != nil {
		op := "="
		if q.Department.Exclude {
			op = "<>"
		}
		parts = append(parts, fmt.Sprintf("#department %s :department", op))
		names["#department"] = "department"
		values[":department"] = &types.AttributeValueMemberS{Value: q.Department.Department}
	}
	for i, name := range q.ExcludeNames {
		ph := fmt.Sprintf(":excl%d", i)
		parts = append(parts, fmt.Sprintf("#id <> %s", ph))
		names["#id"] = "id"
		values[ph] = &types.AttributeValueMemberS{Value: name}
	}

	return strings.Join(parts, " AND "), names, values
}

func (r *AcademicDynamoRepository) getByID(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func fromStudentGroupItem(it studentGroupItem) entities.StudentGroup {
	return entities.StudentGroup{
		ID:           it.ID,
		Name:         it.Name,
		Program:      it.Program,
		Program2:     it.Program2,
		AcademicYear: it.AcademicYear,
		AcademicTerm: it.AcademicTerm,
		Day:          it.Day,
		Afternoon:    it.Afternoon,
		Department:   it.Department,
		Status:       it.Status,
		MinAge:       it.MinAge,
		MaxAge:       it.MaxAge,
		Schooling:    it.Schooling,
		Segment:      it.Segment,
		StartDate:    stringToTime(it.StartDate),
	}
}
