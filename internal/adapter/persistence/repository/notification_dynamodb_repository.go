package repository

import (
	"context"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	IdempotencyKey string         `dynamodbav:"idempotency_key"`
	UniversityID   string         `dynamodbav:"university_id"`
	Title          string         `dynamodbav:"title"`
	Message        string         `dynamodbav:"message"`
	Link           string         `dynamodbav:"link"`
	Metadata       map[string]any `dynamodbav:"metadata,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the university notification feed.
//
// Table requirements:
//   - PK: idempotency_key (string)
type NotificationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoAPI, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Insert(ctx context.Context, n entities.NotificationEntry) error {
	av, err := attributevalue.MarshalMap(notificationItem{
		IdempotencyKey: n.IdempotencyKey,
		UniversityID:   n.UniversityID,
		Title:          n.Title,
		Message:        n.Message,
		Link:           n.Link,
		Metadata:       n.Metadata,
		CreatedAt:      formatTime(n.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "idempotency_key",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrNotificationDuplicate
	}
	return err
}
