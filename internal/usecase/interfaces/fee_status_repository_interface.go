package interfaces

import (
	"context"
	"tuition_billing/internal/domain/entities"
)

// IFeeStatusRepository abstracts the per-user fee-status profile.
//
// MarkPaid is a single atomic write that only ever sets a flag to true.
type IFeeStatusRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.FeeStatusProfile, error)
	MarkPaid(ctx context.Context, userID string, feeType entities.FeeType) error
}
