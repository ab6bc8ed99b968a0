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
	defaultFichasGestanteTableName = "fichas_gestante"
	defaultFichasCriancaTableName  = "fichas_crianca"
)

type gestanteFichaItem struct {
	ID           string `dynamodbav:"id"`
	Assistido    string `dynamodbav:"assistido"`
	CustomerLink string `dynamodbav:"customer_link,omitempty"`
	Turma        string `dynamodbav:"turma,omitempty"`
	CPF          string `dynamodbav:"cpf"`
	DateOfBirth  string `dynamodbav:"data_nascimento"`
	Phone        string `dynamodbav:"telefone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	Age          int    `dynamodbav:"idade"`
	CreatedAt    string `dynamodbav:"created_at"`
}

type criancaFichaItem struct {
	ID           string `dynamodbav:"id"`
	Assistido    string `dynamodbav:"assistido"`
	CustomerLink string `dynamodbav:"customer_link,omitempty"`
	CPF          string `dynamodbav:"cpf"`
	DateOfBirth  string `dynamodbav:"data_nascimento"`
	Phone        string `dynamodbav:"telefone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	Age          int    `dynamodbav:"idade"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// FichaDynamoRepository persists the program case records, one table
// per ficha kind.
//
// Table requirements (both tables):
//   - PK: id (string)

type FichaDynamoRepository struct {
	ddb           *dynamodb.Client
	gestanteTable string
	criancaTable  string
}

var _ interfaces.IFichaRepository = (*FichaDynamoRepository)(nil)

func NewFichaDynamoRepository(ddb *dynamodb.Client) *FichaDynamoRepository {
	return &FichaDynamoRepository{
		ddb:           ddb,
		gestanteTable: getenvDefault("FICHAS_GESTANTE_TABLE", defaultFichasGestanteTableName),
		criancaTable:  getenvDefault("FICHAS_CRIANCA_TABLE", defaultFichasCriancaTableName),
	}
}

func (r *FichaDynamoRepository) InsertGestante(ctx context.Context, f entities.GestanteFicha) (entities.GestanteFicha, error) {
	f.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(gestanteFichaItem{
		ID:           f.ID,
		Assistido:    f.Assistido,
		CustomerLink: f.CustomerLink,
		Turma:        f.Turma,
		CPF:          f.CPF,
		DateOfBirth:  timeToString(f.DateOfBirth),
		Phone:        f.Phone,
		Email:        f.Email,
		Age:          f.Age,
		CreatedAt:    timeToString(f.CreatedAt),
	})
	if err != nil {
		return entities.GestanteFicha{}, err
	}

	if err := r.put(ctx, r.gestanteTable, av); err != nil {
		return entities.GestanteFicha{}, err
	}
	return f, nil
}

func (r *FichaDynamoRepository) InsertCrianca(ctx context.Context, f entities.CriancaFicha) (entities.CriancaFicha, error) {
	f.CreatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(criancaFichaItem{
		ID:           f.ID,
		Assistido:    f.Assistido,
		CustomerLink: f.CustomerLink,
		CPF:          f.CPF,
		DateOfBirth:  timeToString(f.DateOfBirth),
		Phone:        f.Phone,
		Email:        f.Email,
		Age:          f.Age,
		CreatedAt:    timeToString(f.CreatedAt),
	})
	if err != nil {
		return entities.CriancaFicha{}, err
	}

	if err := r.put(ctx, r.criancaTable, av); err != nil {
		return entities.CriancaFicha{}, err
	}
	return f, nil
}

func (r *FichaDynamoRepository) put(ctx context.Context, table string, av map[string]types.AttributeValue) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
