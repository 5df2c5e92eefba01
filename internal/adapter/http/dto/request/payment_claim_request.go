package request

import (
	"errors"
	"strings"
	"time"

	"tuition_billing/internal/usecase"
)

var (
	ErrInvalidPaymentDate = errors.New("invalid payment_date")
)

// paymentDateLayouts are tried in order; the upload form sends a plain date.
var paymentDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// PaymentClaimRequest is the proof upload payload. The owning user comes from
// the authenticated caller, never from the body.
type PaymentClaimRequest struct {
	FeeType          string         `json:"fee_type" binding:"required"`
	Amount           float64        `json:"amount" binding:"required"`
	Currency         string         `json:"currency"`
	RecipientEmail   string         `json:"recipient_email" binding:"required"`
	RecipientName    string         `json:"recipient_name" binding:"required"`
	ProofURL         string         `json:"proof_url" binding:"required"`
	ConfirmationCode string         `json:"confirmation_code" binding:"required"`
	PaymentDate      string         `json:"payment_date" binding:"required"`
	ScholarshipIDs   []string       `json:"scholarship_ids"`
	Metadata         map[string]any `json:"metadata"`
}

func (r PaymentClaimRequest) ResolvePaymentDate() (time.Time, error) {
	raw := strings.TrimSpace(r.PaymentDate)
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidPaymentDate
}

func (r PaymentClaimRequest) ToCommand(userID string) (usecase.SubmitClaimCommand, error) {
	paidAt, err := r.ResolvePaymentDate()
	if err != nil {
		return usecase.SubmitClaimCommand{}, err
	}
	return usecase.SubmitClaimCommand{
		UserID:           userID,
		FeeType:          r.FeeType,
		Amount:           r.Amount,
		Currency:         r.Currency,
		RecipientEmail:   r.RecipientEmail,
		RecipientName:    r.RecipientName,
		ProofURL:         r.ProofURL,
		ConfirmationCode: r.ConfirmationCode,
		PaymentDate:      paidAt,
		ScholarshipIDs:   r.ScholarshipIDs,
		Metadata:         r.Metadata,
	}, nil
}
