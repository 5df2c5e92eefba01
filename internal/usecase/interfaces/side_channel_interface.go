package interfaces

import (
	"context"
	"time"

	"tuition_billing/internal/domain/entities"
)

// Best-effort side channels. Implementations bound every call with a timeout,
// never retry and only log/measure the outcome; nothing is returned to callers.

// IValidatorDispatcher sends a claim to the external proof validator.
type IValidatorDispatcher interface {
	Dispatch(ctx context.Context, req ValidationRequest)
}

// IEmailForwarder posts a notification to the email-delivery webhook.
type IEmailForwarder interface {
	Forward(ctx context.Context, n EmailNotification)
}

// IEventPublisher publishes saga domain events to the message broker.
type IEventPublisher interface {
	PublishFeeReconciled(ctx context.Context, e FeeReconciledEvent) error
}

// ValidationRequest is the payload dispatched to the validator.
type ValidationRequest struct {
	PaymentID        string         `json:"payment_id"`
	UserID           string         `json:"user_id"`
	FeeType          string         `json:"fee_type"`
	Amount           float64        `json:"amount"`
	Currency         string         `json:"currency"`
	RecipientName    string         `json:"recipient_name"`
	RecipientEmail   string         `json:"recipient_email"`
	ProofURL         string         `json:"proof_url"`
	ConfirmationCode string         `json:"confirmation_code"`
	PaymentDate      time.Time      `json:"payment_date"`
	SubmittedAt      time.Time      `json:"submitted_at"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	CallbackURL      string         `json:"callback_url"`
	CorrelationID    string         `json:"correlation_id,omitempty"`
}

func NewValidationRequest(c entities.PaymentClaim, callbackURL, correlationID string) ValidationRequest {
	return ValidationRequest{
		PaymentID:        c.ID,
		UserID:           c.UserID,
		FeeType:          string(c.FeeType),
		Amount:           c.Amount,
		Currency:         c.Currency,
		RecipientName:    c.RecipientName,
		RecipientEmail:   c.RecipientEmail,
		ProofURL:         c.ProofURL,
		ConfirmationCode: c.ConfirmationCode,
		PaymentDate:      c.PaymentDate,
		SubmittedAt:      c.SubmittedAt,
		Metadata:         c.Metadata,
		CallbackURL:      callbackURL,
		CorrelationID:    correlationID,
	}
}

// EmailNotification is the payload forwarded to the email-delivery webhook.
type EmailNotification struct {
	NotificationType string  `json:"notification_type"`
	StudentEmail     string  `json:"student_email"`
	StudentName      string  `json:"student_name"`
	ScholarshipName  string  `json:"scholarship_name"`
	UniversityName   string  `json:"university_name"`
	UniversityEmail  string  `json:"university_email"`
	Title            string  `json:"title"`
	MessageBody      string  `json:"message_body"`
	RedirectURL      string  `json:"redirect_url"`
	State            string  `json:"state"`
	FeeType          string  `json:"fee_type"`
	Amount           float64 `json:"amount"`
	UserID           string  `json:"user_id"`
	ApplicationID    string  `json:"application_id"`
	ScholarshipID    string  `json:"scholarship_id"`
	UniversityID     string  `json:"university_id"`
	PaymentID        string  `json:"payment_id,omitempty"`
	IdempotencyKey   string  `json:"idempotency_key"`
	CorrelationID    string  `json:"correlation_id,omitempty"`
}

// FeeReconciledEvent is published after a positive verdict was reconciled.
type FeeReconciledEvent struct {
	UserID         string    `json:"user_id"`
	FeeType        string    `json:"fee_type"`
	PaymentID      string    `json:"payment_id,omitempty"`
	ApplicationIDs []string  `json:"application_ids,omitempty"`
	CorrelationID  string    `json:"correlation_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
