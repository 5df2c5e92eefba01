package repository

import (
	"context"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName = "applications"
	applicationsStudentIDIndex   = "student_id-index"
)

type applicationItem struct {
	ID                 string `dynamodbav:"id"`
	StudentID          string `dynamodbav:"student_id"`
	ScholarshipID      string `dynamodbav:"scholarship_id"`
	Status             string `dynamodbav:"status"`
	ApplicationFeePaid bool   `dynamodbav:"is_application_fee_paid"`
	ScholarshipFeePaid bool   `dynamodbav:"is_scholarship_fee_paid"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ApplicationDynamoRepository persists ApplicationRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, student_id#scholarship_id)
//   - GSI: student_id-index (PK: student_id)
type ApplicationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb DynamoAPI, tableName string) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultApplicationsTableName),
	}
}

func (r *ApplicationDynamoRepository) Get(ctx context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", entities.ApplicationID(studentID, scholarshipID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApplicationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApplicationRecord{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApplicationRecord{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *ApplicationDynamoRepository) ListByStudentID(ctx context.Context, studentID string) ([]entities.ApplicationRecord, error) {
	items := make([]entities.ApplicationRecord, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(applicationsStudentIDIndex),
		KeyConditionExpression: aws.String("student_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: studentID},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it applicationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromApplicationItem(it))
		}
	}
	return items, nil
}

// MarkApplicationFeePaid upserts the (student, scholarship) record. Identity and
// status are only written when absent, so an existing approval survives.
func (r *ApplicationDynamoRepository) MarkApplicationFeePaid(ctx context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", entities.ApplicationID(studentID, scholarshipID)),
		UpdateExpression: aws.String("SET #student_id = if_not_exists(#student_id, :sid), " +
			"#scholarship_id = if_not_exists(#scholarship_id, :schid), " +
			"#status = if_not_exists(#status, :status), " +
			"#created_at = if_not_exists(#created_at, :now), " +
			"#fee_paid = :paid, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#student_id":     "student_id",
			"#scholarship_id": "scholarship_id",
			"#status":         "status",
			"#created_at":     "created_at",
			"#fee_paid":       "is_application_fee_paid",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":    &types.AttributeValueMemberS{Value: studentID},
			":schid":  &types.AttributeValueMemberS{Value: scholarshipID},
			":status": &types.AttributeValueMemberS{Value: string(entities.ApplicationStatusUnderReview)},
			":paid":   &types.AttributeValueMemberBOOL{Value: true},
			":now":    &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ApplicationRecord{}, err
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ApplicationRecord{}, err
	}
	return fromApplicationItem(it), nil
}

// MarkScholarshipFeePaid sets the scholarship-fee marker on an existing record.
// A missing record is left absent and reported as a zero ApplicationRecord.
func (r *ApplicationDynamoRepository) MarkScholarshipFeePaid(ctx context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", entities.ApplicationID(studentID, scholarshipID)),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #fee_paid = :paid, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#fee_paid":   "is_scholarship_fee_paid",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberBOOL{Value: true},
			":now":  &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ApplicationRecord{}, nil
		}
		return entities.ApplicationRecord{}, err
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ApplicationRecord{}, err
	}
	return fromApplicationItem(it), nil
}

func fromApplicationItem(it applicationItem) entities.ApplicationRecord {
	return entities.ApplicationRecord{
		ID:                 it.ID,
		StudentID:          it.StudentID,
		ScholarshipID:      it.ScholarshipID,
		Status:             entities.ApplicationStatus(it.Status),
		ApplicationFeePaid: it.ApplicationFeePaid,
		ScholarshipFeePaid: it.ScholarshipFeePaid,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
