package response

import "tuition_billing/internal/domain/entities"

type ProofVerdictResponse struct {
	Accepted bool `json:"accepted"`
}

// ClaimVerdictResponse reports the claim's status after the callback; a
// redelivered verdict reports the status already on record.
type ClaimVerdictResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

func FromClaimVerdict(p entities.PaymentClaim) ClaimVerdictResponse {
	return ClaimVerdictResponse{PaymentID: p.ID, Status: string(p.Status)}
}
