package repository

import (
	"context"
	"strings"
	"testing"

	"tuition_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestApplicationDynamoRepository_MarkApplicationFeePaid(t *testing.T) {
	stored, _ := attributevalue.MarshalMap(applicationItem{
		ID:                 "stu-1#sch-1",
		StudentID:          "stu-1",
		ScholarshipID:      "sch-1",
		Status:             "approved",
		ApplicationFeePaid: true,
	})
	ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return &dynamodb.UpdateItemOutput{Attributes: stored}, nil
	}}
	repo := NewApplicationDynamoRepository(ddb, "")

	app, err := repo.MarkApplicationFeePaid(context.Background(), "stu-1", "sch-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != entities.ApplicationStatusApproved || !app.ApplicationFeePaid {
		t.Fatalf("unexpected application: %+v", app)
	}

	in := ddb.updates[0]
	if in.Key["id"].(*types.AttributeValueMemberS).Value != "stu-1#sch-1" {
		t.Fatalf("unexpected key: %+v", in.Key)
	}
	expr := *in.UpdateExpression
	if !strings.Contains(expr, "#status = if_not_exists(#status, :status)") || !strings.Contains(expr, "#fee_paid = :paid") {
		t.Fatalf("unexpected expression: %s", expr)
	}
	if in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value != "under_review" {
		t.Fatalf("new records must start under_review")
	}
}

func TestApplicationDynamoRepository_MarkScholarshipFeePaid(t *testing.T) {
	t.Run("existing record", func(t *testing.T) {
		stored, _ := attributevalue.MarshalMap(applicationItem{
			ID:                 "stu-1#sch-1",
			StudentID:          "stu-1",
			ScholarshipID:      "sch-1",
			Status:             "under_review",
			ScholarshipFeePaid: true,
		})
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{Attributes: stored}, nil
		}}
		repo := NewApplicationDynamoRepository(ddb, "")

		app, err := repo.MarkScholarshipFeePaid(context.Background(), "stu-1", "sch-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !app.ScholarshipFeePaid || app.ID != "stu-1#sch-1" {
			t.Fatalf("unexpected application: %+v", app)
		}

		in := ddb.updates[0]
		if *in.ConditionExpression != "attribute_exists(#id)" {
			t.Fatalf("update must not create records: %s", *in.ConditionExpression)
		}
		if in.ExpressionAttributeNames["#fee_paid"] != "is_scholarship_fee_paid" {
			t.Fatalf("unexpected marker attribute: %+v", in.ExpressionAttributeNames)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errConditionFailed
		}}
		repo := NewApplicationDynamoRepository(ddb, "")

		app, err := repo.MarkScholarshipFeePaid(context.Background(), "stu-1", "sch-9")
		if err != nil || app.ID != "" {
			t.Fatalf("unexpected %+v %v", app, err)
		}
	})
}

func TestApplicationDynamoRepository_Reads(t *testing.T) {
	t.Run("get missing", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewApplicationDynamoRepository(ddb, "apps")
		app, err := repo.Get(context.Background(), "stu-1", "sch-1")
		if err != nil || app.ID != "" {
			t.Fatalf("unexpected %+v %v", app, err)
		}
		if *ddb.gets[0].TableName != "apps" {
			t.Fatalf("expected configured table")
		}
	})

	t.Run("list by student", func(t *testing.T) {
		item, _ := attributevalue.MarshalMap(applicationItem{ID: "stu-1#sch-1", StudentID: "stu-1", ScholarshipID: "sch-1"})
		ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{item}}}}
		repo := NewApplicationDynamoRepository(ddb, "")
		apps, err := repo.ListByStudentID(context.Background(), "stu-1")
		if err != nil || len(apps) != 1 || apps[0].ScholarshipID != "sch-1" {
			t.Fatalf("unexpected %+v %v", apps, err)
		}
		if *ddb.queries[0].IndexName != applicationsStudentIDIndex {
			t.Fatalf("expected student index")
		}
	})
}
