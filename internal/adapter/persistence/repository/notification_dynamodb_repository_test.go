package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNotificationDynamoRepository_Insert(t *testing.T) {
	entry := entities.NotificationEntry{
		IdempotencyKey: "k1",
		UniversityID:   "uni-1",
		Title:          "Scholarship fee paid",
		Message:        "Student Ana paid.",
		CreatedAt:      time.Now(),
	}

	t.Run("first insert", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewNotificationDynamoRepository(ddb, "")
		if err := repo.Insert(context.Background(), entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := ddb.puts[0]
		if *in.ConditionExpression != "attribute_not_exists(#key)" || in.ExpressionAttributeNames["#key"] != "idempotency_key" {
			t.Fatalf("unexpected put: %+v", in)
		}
	})

	t.Run("duplicate key", func(t *testing.T) {
		ddb := &fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) { return nil, errConditionFailed }}
		repo := NewNotificationDynamoRepository(ddb, "")
		if err := repo.Insert(context.Background(), entry); !errors.Is(err, interfaces.ErrNotificationDuplicate) {
			t.Fatalf("expected ErrNotificationDuplicate, got %v", err)
		}
	})

	t.Run("other error", func(t *testing.T) {
		ddb := &fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) { return nil, errFakeDynamo }}
		repo := NewNotificationDynamoRepository(ddb, "")
		if err := repo.Insert(context.Background(), entry); !errors.Is(err, errFakeDynamo) {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})
}
