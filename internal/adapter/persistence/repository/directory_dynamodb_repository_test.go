package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestDirectoryDynamoRepository(t *testing.T) {
	sch, _ := attributevalue.MarshalMap(scholarshipItem{ID: "sch-1", Title: "STEM Excellence", UniversityID: "uni-1"})
	uni, _ := attributevalue.MarshalMap(universityItem{ID: "uni-1", Name: "Lakeside University", ContactEmail: "admissions@lakeside.edu"})
	ddb := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		switch *in.TableName {
		case "scholarships":
			return &dynamodb.GetItemOutput{Item: sch}, nil
		case "universities":
			return &dynamodb.GetItemOutput{Item: uni}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := NewDirectoryDynamoRepository(ddb, "", "")

	s, err := repo.GetScholarship(context.Background(), "sch-1")
	if err != nil || s.Title != "STEM Excellence" || s.UniversityID != "uni-1" {
		t.Fatalf("unexpected scholarship %+v %v", s, err)
	}
	u, err := repo.GetUniversity(context.Background(), "uni-1")
	if err != nil || u.ContactEmail != "admissions@lakeside.edu" {
		t.Fatalf("unexpected university %+v %v", u, err)
	}

	t.Run("empty id skips the lookup", func(t *testing.T) {
		calls := len(ddb.gets)
		s, err := repo.GetScholarship(context.Background(), "")
		if err != nil || s.ID != "" || len(ddb.gets) != calls {
			t.Fatalf("unexpected lookup")
		}
	})
}
