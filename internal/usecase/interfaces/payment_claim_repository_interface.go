package interfaces

import (
	"context"
	"tuition_billing/internal/domain/entities"
)

// IPaymentClaimRepository abstracts DynamoDB persistence for PaymentClaim.
//
// Lookups return a zero PaymentClaim (empty ID) when nothing matches.
//   - Create is the atomic create-claim primitive (fails if the id already exists)
//   - AttachProof only applies to a claim still in status created
//   - RecordVerdict only applies to a non-terminal claim; applied=false means the
//     stored (terminal) claim was returned untouched
type IPaymentClaimRepository interface {
	Create(ctx context.Context, c entities.PaymentClaim) (entities.PaymentClaim, error)
	AttachProof(ctx context.Context, id string, proof entities.ClaimProof) (entities.PaymentClaim, error)
	GetByID(ctx context.Context, id string) (entities.PaymentClaim, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentClaim, error)
	ListByUserAndFeeType(ctx context.Context, userID string, feeType entities.FeeType) ([]entities.PaymentClaim, error)
	RecordVerdict(ctx context.Context, id string, verdict entities.ClaimVerdict) (claim entities.PaymentClaim, applied bool, err error)
}
