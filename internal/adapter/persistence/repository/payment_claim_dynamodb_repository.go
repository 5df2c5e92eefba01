package repository

import (
	"context"
	"log"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentClaimsTableName = "payment_claims"
	paymentClaimsUserIDIndex      = "user_id-index"
)

type paymentClaimItem struct {
	ID               string         `dynamodbav:"id"`
	UserID           string         `dynamodbav:"user_id"`
	FeeType          string         `dynamodbav:"fee_type"`
	Amount           float64        `dynamodbav:"amount"`
	Currency         string         `dynamodbav:"currency"`
	RecipientName    string         `dynamodbav:"recipient_name"`
	RecipientEmail   string         `dynamodbav:"recipient_email"`
	ProofURL         string         `dynamodbav:"proof_url,omitempty"`
	ConfirmationCode string         `dynamodbav:"confirmation_code,omitempty"`
	PaymentDate      string         `dynamodbav:"payment_date,omitempty"`
	Status           string         `dynamodbav:"status"`
	Notes            string         `dynamodbav:"notes,omitempty"`
	Metadata         map[string]any `dynamodbav:"metadata,omitempty"`
	VerdictDetails   map[string]any `dynamodbav:"verdict_details,omitempty"`
	SubmittedAt      string         `dynamodbav:"submitted_at"`
	UpdatedAt        string         `dynamodbav:"updated_at"`
}

// PaymentClaimDynamoRepository persists PaymentClaim entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Status transitions are conditional writes, so a terminal claim can never be
// moved by a late or repeated verdict.
type PaymentClaimDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentClaimRepository = (*PaymentClaimDynamoRepository)(nil)

func NewPaymentClaimDynamoRepository(ddb DynamoAPI, tableName string) *PaymentClaimDynamoRepository {
	return &PaymentClaimDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentClaimsTableName),
	}
}

func (r *PaymentClaimDynamoRepository) Create(ctx context.Context, c entities.PaymentClaim) (entities.PaymentClaim, error) {
	av, err := attributevalue.MarshalMap(toPaymentClaimItem(c))
	if err != nil {
		return entities.PaymentClaim{}, err
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
		return entities.PaymentClaim{}, err
	}
	return c, nil
}

func (r *PaymentClaimDynamoRepository) AttachProof(ctx context.Context, id string, proof entities.ClaimProof) (entities.PaymentClaim, error) {
	c, _, err := r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #proof_url = :proof_url, #confirmation_code = :code, #payment_date = :payment_date, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":proof_url":    &types.AttributeValueMemberS{Value: proof.ProofURL},
			":code":         &types.AttributeValueMemberS{Value: proof.ConfirmationCode},
			":payment_date": &types.AttributeValueMemberS{Value: formatTime(proof.PaymentDate)},
			":status":       &types.AttributeValueMemberS{Value: string(entities.ClaimStatusPendingVerification)},
			":from":         &types.AttributeValueMemberS{Value: string(entities.ClaimStatusCreated)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#proof_url":         "proof_url",
			"#confirmation_code": "confirmation_code",
			"#payment_date":      "payment_date",
			"#status":            "status",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
	return c, err
}

func (r *PaymentClaimDynamoRepository) RecordVerdict(ctx context.Context, id string, verdict entities.ClaimVerdict) (entities.PaymentClaim, bool, error) {
	c, applied, err := r.update(ctx, id, "#status IN (:created, :pending)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #notes = :notes, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(verdict.Status)},
			":notes":      &types.AttributeValueMemberS{Value: verdict.Notes},
			":created":    &types.AttributeValueMemberS{Value: string(entities.ClaimStatusCreated)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ClaimStatusPendingVerification)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#notes":      "notes",
			"#updated_at": "updated_at",
		}
		if len(verdict.Details) > 0 {
			details, err := attributevalue.Marshal(verdict.Details)
			if err != nil {
				// The status transition still goes through without the details.
				log.Printf("[claim][repository] verdict details not stored payment_id=%s err=%v", id, err)
			} else {
				expr += ", #verdict_details = :details"
				vals[":details"] = details
				names["#verdict_details"] = "verdict_details"
			}
		}
		return expr, vals, names
	})
	if err != nil || applied {
		return c, applied, err
	}

	// The condition failed: the claim is missing or already terminal.
	stored, err := r.GetByID(ctx, id)
	return stored, false, err
}

func (r *PaymentClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentClaim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentClaim{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentClaim{}, nil
	}

	var it paymentClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentClaim{}, err
	}
	return fromPaymentClaimItem(it), nil
}

func (r *PaymentClaimDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentClaim, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentClaimsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
}

func (r *PaymentClaimDynamoRepository) ListByUserAndFeeType(ctx context.Context, userID string, feeType entities.FeeType) ([]entities.PaymentClaim, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentClaimsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("#fee_type = :ft"),
		ExpressionAttributeNames: map[string]string{
			"#fee_type": "fee_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
			":ft":  &types.AttributeValueMemberS{Value: string(feeType)},
		},
	})
}

func (r *PaymentClaimDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.PaymentClaim, error) {
	items := make([]entities.PaymentClaim, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentClaimItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentClaimItem(it))
		}
	}
	return items, nil
}

// update applies a conditional UpdateItem. applied=false with a nil error means
// the condition did not hold.
func (r *PaymentClaimDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PaymentClaim, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentClaim{}, false, nil
		}
		return entities.PaymentClaim{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentClaim{}, false, nil
	}
	var it paymentClaimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentClaim{}, false, err
	}
	return fromPaymentClaimItem(it), true, nil
}

func toPaymentClaimItem(c entities.PaymentClaim) paymentClaimItem {
	return paymentClaimItem{
		ID:               c.ID,
		UserID:           c.UserID,
		FeeType:          string(c.FeeType),
		Amount:           c.Amount,
		Currency:         c.Currency,
		RecipientName:    c.RecipientName,
		RecipientEmail:   c.RecipientEmail,
		ProofURL:         c.ProofURL,
		ConfirmationCode: c.ConfirmationCode,
		PaymentDate:      formatTime(c.PaymentDate),
		Status:           string(c.Status),
		Notes:            c.Notes,
		Metadata:         c.Metadata,
		VerdictDetails:   c.VerdictDetails,
		SubmittedAt:      formatTime(c.SubmittedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromPaymentClaimItem(it paymentClaimItem) entities.PaymentClaim {
	return entities.PaymentClaim{
		ID:               it.ID,
		UserID:           it.UserID,
		FeeType:          entities.FeeType(it.FeeType),
		Amount:           it.Amount,
		Currency:         it.Currency,
		RecipientName:    it.RecipientName,
		RecipientEmail:   it.RecipientEmail,
		ProofURL:         it.ProofURL,
		ConfirmationCode: it.ConfirmationCode,
		PaymentDate:      parseTime(it.PaymentDate),
		Status:           entities.ClaimStatus(it.Status),
		Notes:            it.Notes,
		Metadata:         it.Metadata,
		VerdictDetails:   it.VerdictDetails,
		SubmittedAt:      parseTime(it.SubmittedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
