package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/infrastructure/metrics"
	"tuition_billing/internal/usecase/interfaces"
	"tuition_billing/pkg"

	"github.com/google/uuid"
)

const defaultCurrency = "USD"

var (
	ErrUnauthenticated          = errors.New("unauthenticated")
	ErrInvalidFeeType           = errors.New("invalid fee_type")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrInvalidRecipient         = errors.New("invalid recipient")
	ErrInvalidProofURL          = errors.New("invalid proof_url")
	ErrInvalidConfirmationCode  = errors.New("invalid confirmation_code")
	ErrInvalidPaymentDate       = errors.New("invalid payment_date")
	ErrInvalidPaymentClaimID    = errors.New("invalid payment id")
	ErrMissingScholarshipIDs    = errors.New("application fee requires scholarship_ids")
	ErrPaymentClaimNotPersisted = errors.New("payment claim vanished before proof was attached")
)

// SubmitClaimCommand is a validated-at-the-edge proof submission; UserID is the
// authenticated caller.
type SubmitClaimCommand struct {
	UserID           string
	FeeType          string
	Amount           float64
	Currency         string
	RecipientEmail   string
	RecipientName    string
	ProofURL         string
	ConfirmationCode string
	PaymentDate      time.Time
	ScholarshipIDs   []string
	Metadata         map[string]any
}

// IPaymentClaimUseCase is the proof intake of the verification saga.
//
//   - Submit validates, creates the claim, attaches the proof (pending_verification)
//     and dispatches it to the validator on a best-effort basis
//   - GetForUser / ListForUser are the owner's status reads
type IPaymentClaimUseCase interface {
	Submit(ctx context.Context, cmd SubmitClaimCommand) (entities.PaymentClaim, error)
	GetForUser(ctx context.Context, userID, id string) (entities.PaymentClaim, error)
	ListForUser(ctx context.Context, userID, feeType string) ([]entities.PaymentClaim, error)
}

type PaymentClaimUseCase struct {
	repo        interfaces.IPaymentClaimRepository
	dispatcher  interfaces.IValidatorDispatcher
	callbackURL string
}

var _ IPaymentClaimUseCase = (*PaymentClaimUseCase)(nil)

func NewPaymentClaimUseCase(repo interfaces.IPaymentClaimRepository, dispatcher interfaces.IValidatorDispatcher, callbackURL string) *PaymentClaimUseCase {
	return &PaymentClaimUseCase{repo: repo, dispatcher: dispatcher, callbackURL: callbackURL}
}

func (u *PaymentClaimUseCase) Submit(ctx context.Context, cmd SubmitClaimCommand) (entities.PaymentClaim, error) {
	log.Printf("[claim][usecase] submit start user_id=%s fee_type=%q amount=%.2f", cmd.UserID, cmd.FeeType, cmd.Amount)
	claim, err := newClaimFromCommand(cmd)
	if err != nil {
		log.Printf("[claim][usecase] validation failed user_id=%s err=%v", cmd.UserID, err)
		return entities.PaymentClaim{}, err
	}

	created, err := u.repo.Create(ctx, claim)
	if err != nil {
		log.Printf("[claim][usecase] create failed user_id=%s payment_id=%s err=%v", claim.UserID, claim.ID, err)
		return entities.PaymentClaim{}, err
	}

	pending, err := u.repo.AttachProof(ctx, created.ID, entities.ClaimProof{
		ProofURL:         claim.ProofURL,
		ConfirmationCode: claim.ConfirmationCode,
		PaymentDate:      claim.PaymentDate,
	})
	if err != nil {
		log.Printf("[claim][usecase] attach proof failed payment_id=%s err=%v", created.ID, err)
		return entities.PaymentClaim{}, err
	}
	if pending.ID == "" {
		log.Printf("[claim][usecase] attach proof found no claim payment_id=%s", created.ID)
		return entities.PaymentClaim{}, ErrPaymentClaimNotPersisted
	}
	metrics.ClaimsCreated.WithLabelValues(string(pending.FeeType)).Inc()

	if u.dispatcher != nil {
		u.dispatcher.Dispatch(ctx, interfaces.NewValidationRequest(pending, u.callbackURL, pkg.CorrelationID(ctx)))
	}

	log.Printf("[claim][usecase] submit success user_id=%s payment_id=%s status=%s", pending.UserID, pending.ID, pending.Status)
	return pending, nil
}

func newClaimFromCommand(cmd SubmitClaimCommand) (entities.PaymentClaim, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return entities.PaymentClaim{}, ErrUnauthenticated
	}
	feeType, ok := entities.ParseFeeType(cmd.FeeType)
	if !ok {
		return entities.PaymentClaim{}, ErrInvalidFeeType
	}
	if cmd.Amount <= 0 {
		return entities.PaymentClaim{}, ErrInvalidAmount
	}
	recipientName := strings.TrimSpace(cmd.RecipientName)
	recipientEmail := strings.TrimSpace(cmd.RecipientEmail)
	if recipientName == "" || !validEmail(recipientEmail) {
		return entities.PaymentClaim{}, ErrInvalidRecipient
	}
	proofURL := strings.TrimSpace(cmd.ProofURL)
	if !validURL(proofURL) {
		return entities.PaymentClaim{}, ErrInvalidProofURL
	}
	code := strings.TrimSpace(cmd.ConfirmationCode)
	if code == "" {
		return entities.PaymentClaim{}, ErrInvalidConfirmationCode
	}
	if cmd.PaymentDate.IsZero() {
		return entities.PaymentClaim{}, ErrInvalidPaymentDate
	}

	metadata := copyMetadata(cmd.Metadata)
	if len(cmd.ScholarshipIDs) > 0 {
		ids := make([]any, 0, len(cmd.ScholarshipIDs))
		for _, id := range cmd.ScholarshipIDs {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		metadata["scholarship_ids"] = ids
	}
	if feeType == entities.FeeTypeApplication && len(scholarshipIDsFromMetadata(metadata)) == 0 {
		return entities.PaymentClaim{}, ErrMissingScholarshipIDs
	}

	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now().UTC()
	return entities.PaymentClaim{
		ID:               uuid.NewString(),
		UserID:           userID,
		FeeType:          feeType,
		Amount:           cmd.Amount,
		Currency:         currency,
		RecipientName:    recipientName,
		RecipientEmail:   recipientEmail,
		ProofURL:         proofURL,
		ConfirmationCode: code,
		PaymentDate:      cmd.PaymentDate.UTC(),
		Status:           entities.ClaimStatusCreated,
		Metadata:         metadata,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}, nil
}

func validEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	return err == nil && addr.Address == v
}

func validURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (u *PaymentClaimUseCase) GetForUser(ctx context.Context, userID, id string) (entities.PaymentClaim, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PaymentClaim{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentClaim{}, ErrInvalidPaymentClaimID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentClaim{}, err
	}
	// Someone else's claim is reported as missing.
	if c.ID == "" || c.UserID != userID {
		return entities.PaymentClaim{}, ErrPaymentClaimNotFound
	}
	return c, nil
}

func (u *PaymentClaimUseCase) ListForUser(ctx context.Context, userID, feeType string) ([]entities.PaymentClaim, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(feeType) == "" {
		return u.repo.ListByUserID(ctx, userID)
	}
	f, ok := entities.ParseFeeType(feeType)
	if !ok {
		return nil, ErrInvalidFeeType
	}
	return u.repo.ListByUserAndFeeType(ctx, userID, f)
}
