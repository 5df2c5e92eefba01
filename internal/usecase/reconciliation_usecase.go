package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/infrastructure/metrics"
	"tuition_billing/internal/usecase/interfaces"
	"tuition_billing/pkg"
)

var (
	ErrInvalidReconcileUserID = errors.New("invalid user_id")
	ErrUnsupportedFeeType     = errors.New("unsupported fee type")
	ErrMissingScholarshipID   = errors.New("application fee without scholarship id")
)

// ReconcileCommand is a positive verdict to translate into fee state.
type ReconcileCommand struct {
	UserID    string
	FeeType   entities.FeeType
	Metadata  map[string]any
	Amount    float64
	PaymentID string
}

type ReconcileResult struct {
	FeeType        entities.FeeType
	ProfileUpdated bool
	Applications   []entities.ApplicationRecord
	Notifications  []NotificationState
}

// IReconciliationUseCase holds every fee-type specific business rule of the saga.
//
// Reconcile is re-entrant: flags only move to true and application records are
// upserted by (student, scholarship), so a repeated call leaves state unchanged.
type IReconciliationUseCase interface {
	Reconcile(ctx context.Context, cmd ReconcileCommand) (ReconcileResult, error)
}

type ReconciliationUseCase struct {
	profiles     interfaces.IFeeStatusRepository
	applications interfaces.IApplicationRepository
	notifier     INotificationUseCase
	events       interfaces.IEventPublisher
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	profiles interfaces.IFeeStatusRepository,
	applications interfaces.IApplicationRepository,
	notifier INotificationUseCase,
	events interfaces.IEventPublisher,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{profiles: profiles, applications: applications, notifier: notifier, events: events}
}

func (u *ReconciliationUseCase) Reconcile(ctx context.Context, cmd ReconcileCommand) (ReconcileResult, error) {
	userID := strings.TrimSpace(cmd.UserID)
	log.Printf("[reconcile][usecase] start user_id=%s fee_type=%s payment_id=%s", userID, cmd.FeeType, cmd.PaymentID)
	res := ReconcileResult{FeeType: cmd.FeeType}
	if userID == "" {
		return res, ErrInvalidReconcileUserID
	}
	if !cmd.FeeType.Valid() {
		log.Printf("[reconcile][usecase] unsupported fee type user_id=%s fee_type=%q", userID, cmd.FeeType)
		metrics.Reconciliations.WithLabelValues(string(cmd.FeeType), "unsupported").Inc()
		return res, fmt.Errorf("%w: %q", ErrUnsupportedFeeType, cmd.FeeType)
	}
	cmd.UserID = userID

	var err error
	switch cmd.FeeType {
	case entities.FeeTypeApplication:
		err = u.reconcileApplicationFee(ctx, cmd, &res)
	case entities.FeeTypeScholarship:
		err = u.reconcileScholarshipFee(ctx, cmd, &res)
	default:
		err = u.markProfile(ctx, cmd, &res)
	}

	outcome := "success"
	if err != nil {
		outcome = "failed"
		if res.ProfileUpdated || len(res.Applications) > 0 {
			outcome = "partial"
		}
	}
	metrics.Reconciliations.WithLabelValues(string(cmd.FeeType), outcome).Inc()

	if err == nil {
		u.publish(ctx, cmd, res)
	}
	log.Printf("[reconcile][usecase] done user_id=%s fee_type=%s outcome=%s applications=%d", userID, cmd.FeeType, outcome, len(res.Applications))
	return res, err
}

func (u *ReconciliationUseCase) markProfile(ctx context.Context, cmd ReconcileCommand, res *ReconcileResult) error {
	if err := u.profiles.MarkPaid(ctx, cmd.UserID, cmd.FeeType); err != nil {
		log.Printf("[reconcile][usecase] profile flag update failed user_id=%s fee_type=%s err=%v", cmd.UserID, cmd.FeeType, err)
		return err
	}
	res.ProfileUpdated = true
	return nil
}

func (u *ReconciliationUseCase) reconcileApplicationFee(ctx context.Context, cmd ReconcileCommand, res *ReconcileResult) error {
	var errs []error
	// The profile flag does not depend on which scholarships the fee covers.
	if err := u.markProfile(ctx, cmd, res); err != nil {
		errs = append(errs, err)
	}

	scholarshipIDs := scholarshipIDsFromMetadata(cmd.Metadata)
	if len(scholarshipIDs) == 0 {
		log.Printf("[reconcile][usecase] application fee without scholarship id; profile only user_id=%s", cmd.UserID)
		return errors.Join(append(errs, ErrMissingScholarshipID)...)
	}

	for _, scholarshipID := range scholarshipIDs {
		app, err := u.applications.MarkApplicationFeePaid(ctx, cmd.UserID, scholarshipID)
		if err != nil {
			log.Printf("[reconcile][usecase] application upsert failed user_id=%s scholarship_id=%s err=%v", cmd.UserID, scholarshipID, err)
			errs = append(errs, err)
			continue
		}
		res.Applications = append(res.Applications, app)
	}

	for _, app := range res.Applications {
		u.notify(ctx, cmd, app, res)
	}
	return errors.Join(errs...)
}

func (u *ReconciliationUseCase) reconcileScholarshipFee(ctx context.Context, cmd ReconcileCommand, res *ReconcileResult) error {
	if err := u.markProfile(ctx, cmd, res); err != nil {
		return err
	}

	apps, err := u.targetApplications(ctx, cmd)
	if err != nil {
		// The flag is committed; only the fan-out is lost.
		log.Printf("[reconcile][usecase] failed resolving applications user_id=%s err=%v", cmd.UserID, err)
		return nil
	}
	for _, app := range apps {
		marked, err := u.applications.MarkScholarshipFeePaid(ctx, app.StudentID, app.ScholarshipID)
		switch {
		case err != nil:
			log.Printf("[reconcile][usecase] scholarship fee marker failed user_id=%s scholarship_id=%s err=%v", cmd.UserID, app.ScholarshipID, err)
			app.ScholarshipFeePaid = true
		case marked.ID != "":
			app = marked
		}
		res.Applications = append(res.Applications, app)
	}
	for _, app := range res.Applications {
		u.notify(ctx, cmd, app, res)
	}
	return nil
}

// targetApplications resolves the applications a scholarship fee applies to:
// the scholarship ids in metadata, or every application of the student.
func (u *ReconciliationUseCase) targetApplications(ctx context.Context, cmd ReconcileCommand) ([]entities.ApplicationRecord, error) {
	ids := scholarshipIDsFromMetadata(cmd.Metadata)
	if len(ids) == 0 {
		return u.applications.ListByStudentID(ctx, cmd.UserID)
	}

	apps := make([]entities.ApplicationRecord, 0, len(ids))
	for _, id := range ids {
		app, err := u.applications.Get(ctx, cmd.UserID, id)
		if err != nil {
			return nil, err
		}
		if app.ID == "" {
			log.Printf("[reconcile][usecase] no application for scholarship user_id=%s scholarship_id=%s", cmd.UserID, id)
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func (u *ReconciliationUseCase) notify(ctx context.Context, cmd ReconcileCommand, app entities.ApplicationRecord, res *ReconcileResult) {
	if u.notifier == nil {
		return
	}
	state, err := u.notifier.NotifyFeePaid(ctx, FeePaidNotice{
		UserID:      cmd.UserID,
		FeeType:     cmd.FeeType,
		Amount:      cmd.Amount,
		PaymentID:   cmd.PaymentID,
		Application: app,
	})
	if err != nil {
		log.Printf("[reconcile][usecase] notification failed user_id=%s application_id=%s err=%v", cmd.UserID, app.ID, err)
		metrics.Notifications.WithLabelValues("failed").Inc()
	}
	res.Notifications = append(res.Notifications, state)
}

func (u *ReconciliationUseCase) publish(ctx context.Context, cmd ReconcileCommand, res ReconcileResult) {
	if u.events == nil {
		return
	}
	ids := make([]string, 0, len(res.Applications))
	for _, app := range res.Applications {
		ids = append(ids, app.ID)
	}
	err := u.events.PublishFeeReconciled(ctx, interfaces.FeeReconciledEvent{
		UserID:         cmd.UserID,
		FeeType:        string(cmd.FeeType),
		PaymentID:      cmd.PaymentID,
		ApplicationIDs: ids,
		CorrelationID:  pkg.CorrelationID(ctx),
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[reconcile][usecase] event publish failed user_id=%s fee_type=%s err=%v", cmd.UserID, cmd.FeeType, err)
	}
}
