package entities

import "time"

// ClaimStatus is the lifecycle of a payment claim.
//
// created -> pending_verification -> verified | rejected. Verified and rejected are terminal.
type ClaimStatus string

const (
	ClaimStatusCreated             ClaimStatus = "created"
	ClaimStatusPendingVerification ClaimStatus = "pending_verification"
	ClaimStatusVerified            ClaimStatus = "verified"
	ClaimStatusRejected            ClaimStatus = "rejected"
)

func (s ClaimStatus) Terminal() bool {
	return s == ClaimStatusVerified || s == ClaimStatusRejected
}

// PaymentClaim is a submitted proof of a manual (bank transfer) payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Metadata carries fee-type specific payload, e.g. the scholarship ids an
// application fee applies to.
type PaymentClaim struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	FeeType          FeeType        `json:"fee_type"`
	Amount           float64        `json:"amount"`
	Currency         string         `json:"currency"`
	RecipientName    string         `json:"recipient_name"`
	RecipientEmail   string         `json:"recipient_email"`
	ProofURL         string         `json:"proof_url"`
	ConfirmationCode string         `json:"confirmation_code"`
	PaymentDate      time.Time      `json:"payment_date"`
	Status           ClaimStatus    `json:"status"`
	Notes            string         `json:"notes,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	VerdictDetails   map[string]any `json:"verdict_details,omitempty"`
	SubmittedAt      time.Time      `json:"submitted_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ClaimProof is the proof metadata attached right after a claim is created.
type ClaimProof struct {
	ProofURL         string
	ConfirmationCode string
	PaymentDate      time.Time
}

// ClaimVerdict is the validator's determination recorded on a claim.
type ClaimVerdict struct {
	Status  ClaimStatus
	Notes   string
	Details map[string]any
}
