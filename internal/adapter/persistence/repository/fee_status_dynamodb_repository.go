package repository

import (
	"context"
	"fmt"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFeeStatusTableName = "fee_status_profiles"

type feeStatusItem struct {
	UserID                  string `dynamodbav:"user_id"`
	FullName                string `dynamodbav:"full_name,omitempty"`
	Email                   string `dynamodbav:"email,omitempty"`
	SelectionProcessFeePaid bool   `dynamodbav:"has_paid_selection_process_fee"`
	ApplicationFeePaid      bool   `dynamodbav:"is_application_fee_paid"`
	ScholarshipFeePaid      bool   `dynamodbav:"is_scholarship_fee_paid"`
	EnrollmentFeePaid       bool   `dynamodbav:"has_paid_enrollment_fee"`
	I20ControlFeePaid       bool   `dynamodbav:"has_paid_i20_control_fee"`
}

// FeeStatusDynamoRepository persists FeeStatusProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
type FeeStatusDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFeeStatusRepository = (*FeeStatusDynamoRepository)(nil)

func NewFeeStatusDynamoRepository(ddb DynamoAPI, tableName string) *FeeStatusDynamoRepository {
	return &FeeStatusDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultFeeStatusTableName),
	}
}

func (r *FeeStatusDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.FeeStatusProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("user_id", userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FeeStatusProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.FeeStatusProfile{UserID: userID}, nil
	}

	var it feeStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FeeStatusProfile{}, err
	}
	return entities.FeeStatusProfile(it), nil
}

// MarkPaid sets one flag to true in a single UpdateItem. The expression has no
// path that writes false, so flags are monotonic under any interleaving.
func (r *FeeStatusDynamoRepository) MarkPaid(ctx context.Context, userID string, feeType entities.FeeType) error {
	attr, ok := entities.FlagAttribute(feeType)
	if !ok {
		return fmt.Errorf("no fee-status flag for fee type %q", feeType)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey("user_id", userID),
		UpdateExpression: aws.String("SET #flag = :paid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#flag":       attr,
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}
