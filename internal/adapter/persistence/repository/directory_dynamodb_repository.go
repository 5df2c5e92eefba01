package repository

import (
	"context"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultScholarshipsTableName = "scholarships"
	defaultUniversitiesTableName = "universities"
)

type scholarshipItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	UniversityID string `dynamodbav:"university_id"`
}

type universityItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	ContactEmail string `dynamodbav:"contact_email"`
}

// DirectoryDynamoRepository reads the scholarship and university tables. Both
// are owned by the catalog side; this service never writes them.
type DirectoryDynamoRepository struct {
	ddb               DynamoAPI
	scholarshipsTable string
	universitiesTable string
}

var _ interfaces.IDirectoryRepository = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb DynamoAPI, scholarshipsTable, universitiesTable string) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:               ddb,
		scholarshipsTable: tableOrDefault(scholarshipsTable, defaultScholarshipsTableName),
		universitiesTable: tableOrDefault(universitiesTable, defaultUniversitiesTableName),
	}
}

func (r *DirectoryDynamoRepository) GetScholarship(ctx context.Context, id string) (entities.Scholarship, error) {
	var it scholarshipItem
	found, err := r.get(ctx, r.scholarshipsTable, id, &it)
	if err != nil || !found {
		return entities.Scholarship{}, err
	}
	return entities.Scholarship(it), nil
}

func (r *DirectoryDynamoRepository) GetUniversity(ctx context.Context, id string) (entities.University, error) {
	var it universityItem
	found, err := r.get(ctx, r.universitiesTable, id, &it)
	if err != nil || !found {
		return entities.University{}, err
	}
	return entities.University(it), nil
}

func (r *DirectoryDynamoRepository) get(ctx context.Context, table, id string, into any) (bool, error) {
	if id == "" {
		return false, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       stringKey("id", id),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, into)
}
