package request

import "tuition_billing/internal/usecase"

// ProofVerdictRequest is the proof-scoped validator callback. It names a user
// and a proof type; it never carries a claim id.
type ProofVerdictRequest struct {
	UserID    string         `json:"user_id" binding:"required"`
	ProofType string         `json:"proof_type" binding:"required"`
	IsValid   *bool          `json:"is_valid" binding:"required"`
	FeeType   string         `json:"fee_type"`
	Metadata  map[string]any `json:"metadata"`
}

func (r ProofVerdictRequest) ToCommand() usecase.ProofVerdictCommand {
	return usecase.ProofVerdictCommand{
		UserID:    r.UserID,
		ProofType: r.ProofType,
		IsValid:   r.IsValid != nil && *r.IsValid,
		FeeType:   r.FeeType,
		Metadata:  r.Metadata,
	}
}

// ClaimVerdictRequest is the claim-scoped validator callback.
type ClaimVerdictRequest struct {
	PaymentID         string         `json:"payment_id" binding:"required"`
	Valid             *bool          `json:"valid" binding:"required"`
	Reason            string         `json:"reason"`
	ValidationDetails map[string]any `json:"validation_details"`
}

func (r ClaimVerdictRequest) ToCommand() usecase.ClaimVerdictCommand {
	return usecase.ClaimVerdictCommand{
		PaymentID: r.PaymentID,
		Valid:     r.Valid != nil && *r.Valid,
		Reason:    r.Reason,
		Details:   r.ValidationDetails,
	}
}
