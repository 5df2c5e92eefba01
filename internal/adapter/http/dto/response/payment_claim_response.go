package response

import (
	"time"

	"tuition_billing/internal/domain/entities"
)

type PaymentClaimCreatedResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

type PaymentClaimResponse struct {
	PaymentID        string         `json:"payment_id"`
	UserID           string         `json:"user_id"`
	FeeType          string         `json:"fee_type"`
	Amount           float64        `json:"amount"`
	Currency         string         `json:"currency"`
	RecipientName    string         `json:"recipient_name"`
	RecipientEmail   string         `json:"recipient_email"`
	ProofURL         string         `json:"proof_url"`
	ConfirmationCode string         `json:"confirmation_code"`
	PaymentDate      string         `json:"payment_date"`
	Status           string         `json:"status"`
	Notes            string         `json:"notes,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	VerdictDetails   map[string]any `json:"verdict_details,omitempty"`
	SubmittedAt      time.Time      `json:"submitted_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func FromPaymentClaimCreated(p entities.PaymentClaim) PaymentClaimCreatedResponse {
	return PaymentClaimCreatedResponse{PaymentID: p.ID, Status: string(p.Status)}
}

func FromPaymentClaim(p entities.PaymentClaim) PaymentClaimResponse {
	return PaymentClaimResponse{
		PaymentID:        p.ID,
		UserID:           p.UserID,
		FeeType:          string(p.FeeType),
		Amount:           p.Amount,
		Currency:         p.Currency,
		RecipientName:    p.RecipientName,
		RecipientEmail:   p.RecipientEmail,
		ProofURL:         p.ProofURL,
		ConfirmationCode: p.ConfirmationCode,
		PaymentDate:      p.PaymentDate.Format("2006-01-02"),
		Status:           string(p.Status),
		Notes:            p.Notes,
		Metadata:         p.Metadata,
		VerdictDetails:   p.VerdictDetails,
		SubmittedAt:      p.SubmittedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPaymentClaims(claims []entities.PaymentClaim) []PaymentClaimResponse {
	out := make([]PaymentClaimResponse, 0, len(claims))
	for _, p := range claims {
		out = append(out, FromPaymentClaim(p))
	}
	return out
}
