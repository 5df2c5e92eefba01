package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/infrastructure/metrics"
	"tuition_billing/internal/usecase/interfaces"
)

var (
	ErrInvalidVerdictUserID    = errors.New("invalid user_id")
	ErrInvalidVerdictProofType = errors.New("invalid proof_type")
	ErrInvalidVerdictPaymentID = errors.New("invalid payment_id")
	ErrPaymentClaimNotFound    = errors.New("payment claim not found")
)

// ProofVerdictCommand is the proof-scoped callback: it names a user and a proof
// type, never a claim.
type ProofVerdictCommand struct {
	UserID    string
	ProofType string
	IsValid   bool
	FeeType   string
	Metadata  map[string]any
}

// ClaimVerdictCommand is the claim-scoped callback.
type ClaimVerdictCommand struct {
	PaymentID string
	Valid     bool
	Reason    string
	Details   map[string]any
}

// IVerdictUseCase ingests validator callbacks. The two contracts are separate
// entry points sharing one reconciliation engine.
type IVerdictUseCase interface {
	IngestProofVerdict(ctx context.Context, cmd ProofVerdictCommand) error
	IngestClaimVerdict(ctx context.Context, cmd ClaimVerdictCommand) (entities.PaymentClaim, error)
}

type VerdictUseCase struct {
	claims     interfaces.IPaymentClaimRepository
	reconciler IReconciliationUseCase
}

var _ IVerdictUseCase = (*VerdictUseCase)(nil)

func NewVerdictUseCase(claims interfaces.IPaymentClaimRepository, reconciler IReconciliationUseCase) *VerdictUseCase {
	return &VerdictUseCase{claims: claims, reconciler: reconciler}
}

func (u *VerdictUseCase) IngestProofVerdict(ctx context.Context, cmd ProofVerdictCommand) error {
	userID := strings.TrimSpace(cmd.UserID)
	proofType := strings.TrimSpace(cmd.ProofType)
	log.Printf("[verdict][usecase] proof verdict start user_id=%s proof_type=%s is_valid=%t", userID, proofType, cmd.IsValid)
	if userID == "" {
		return ErrInvalidVerdictUserID
	}
	if proofType == "" {
		return ErrInvalidVerdictProofType
	}
	metrics.VerdictsReceived.WithLabelValues("proof", verdictLabel(cmd.IsValid)).Inc()

	if !cmd.IsValid {
		log.Printf("[verdict][usecase] negative proof verdict; no state change user_id=%s proof_type=%s", userID, proofType)
		return nil
	}

	feeType := entities.FeeTypeFromProofType(proofType)
	if override := strings.TrimSpace(cmd.FeeType); override != "" {
		if parsed, ok := entities.ParseFeeType(override); ok {
			feeType = parsed
		} else {
			feeType = entities.FeeType(override)
		}
	}

	// Reconciliation failures are acknowledged anyway; the validator redelivers.
	if _, err := u.reconciler.Reconcile(ctx, ReconcileCommand{
		UserID:    userID,
		FeeType:   feeType,
		Metadata:  cmd.Metadata,
		Amount:    amountFromMetadata(cmd.Metadata),
		PaymentID: stringFromMetadata(cmd.Metadata, "payment_id"),
	}); err != nil {
		log.Printf("[verdict][usecase] proof verdict reconciliation failed user_id=%s fee_type=%s err=%v", userID, feeType, err)
	}
	return nil
}

func (u *VerdictUseCase) IngestClaimVerdict(ctx context.Context, cmd ClaimVerdictCommand) (entities.PaymentClaim, error) {
	paymentID := strings.TrimSpace(cmd.PaymentID)
	log.Printf("[verdict][usecase] claim verdict start payment_id=%s valid=%t", paymentID, cmd.Valid)
	if paymentID == "" {
		return entities.PaymentClaim{}, ErrInvalidVerdictPaymentID
	}
	metrics.VerdictsReceived.WithLabelValues("claim", verdictLabel(cmd.Valid)).Inc()

	existing, err := u.claims.GetByID(ctx, paymentID)
	if err != nil {
		log.Printf("[verdict][usecase] failed loading claim payment_id=%s err=%v", paymentID, err)
		return entities.PaymentClaim{}, err
	}
	if existing.ID == "" {
		log.Printf("[verdict][usecase] claim not found payment_id=%s", paymentID)
		return entities.PaymentClaim{}, ErrPaymentClaimNotFound
	}

	status := entities.ClaimStatusRejected
	if cmd.Valid {
		status = entities.ClaimStatusVerified
	}
	claim, applied, err := u.claims.RecordVerdict(ctx, paymentID, entities.ClaimVerdict{
		Status:  status,
		Notes:   strings.TrimSpace(cmd.Reason),
		Details: cmd.Details,
	})
	if err != nil {
		log.Printf("[verdict][usecase] failed recording verdict payment_id=%s err=%v", paymentID, err)
		return entities.PaymentClaim{}, err
	}
	if claim.ID == "" {
		return entities.PaymentClaim{}, ErrPaymentClaimNotFound
	}
	if !applied {
		log.Printf("[verdict][usecase] claim already terminal payment_id=%s status=%s requested=%s", paymentID, claim.Status, status)
	}

	// A redelivered positive verdict reconciles again so a partially failed
	// earlier attempt converges; a rejected claim never reconciles.
	if cmd.Valid && claim.Status == entities.ClaimStatusVerified {
		if _, err := u.reconciler.Reconcile(ctx, ReconcileCommand{
			UserID:    claim.UserID,
			FeeType:   claim.FeeType,
			Metadata:  claim.Metadata,
			Amount:    claim.Amount,
			PaymentID: claim.ID,
		}); err != nil {
			log.Printf("[verdict][usecase] claim verdict reconciliation failed payment_id=%s err=%v", paymentID, err)
		}
	}

	log.Printf("[verdict][usecase] claim verdict done payment_id=%s status=%s applied=%t", paymentID, claim.Status, applied)
	return claim, nil
}

func verdictLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
