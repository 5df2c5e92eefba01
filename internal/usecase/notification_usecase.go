package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tuition_billing/internal/domain/entities"
	"tuition_billing/internal/infrastructure/metrics"
	"tuition_billing/internal/usecase/interfaces"
	"tuition_billing/pkg"
)

var (
	ErrUnsupportedNotificationFee = errors.New("fee type has no university notification")
	ErrScholarshipNotFound        = errors.New("scholarship not found")
	ErrUniversityNotFound         = errors.New("university not found")
)

// FeePaidNotice describes one application whose fee was just reconciled.
type FeePaidNotice struct {
	UserID      string
	FeeType     entities.FeeType
	Amount      float64
	PaymentID   string
	Application entities.ApplicationRecord
}

// INotificationUseCase is the notification fan-out of the saga.
//
// Failures here never undo the fee update that triggered them; callers log the
// returned error and move on.
type INotificationUseCase interface {
	NotifyFeePaid(ctx context.Context, n FeePaidNotice) (NotificationState, error)
}

type NotificationUseCase struct {
	profiles      interfaces.IFeeStatusRepository
	applications  interfaces.IApplicationRepository
	directory     interfaces.IDirectoryRepository
	notifications interfaces.INotificationRepository
	email         interfaces.IEmailForwarder
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	profiles interfaces.IFeeStatusRepository,
	applications interfaces.IApplicationRepository,
	directory interfaces.IDirectoryRepository,
	notifications interfaces.INotificationRepository,
	email interfaces.IEmailForwarder,
) *NotificationUseCase {
	return &NotificationUseCase{
		profiles:      profiles,
		applications:  applications,
		directory:     directory,
		notifications: notifications,
		email:         email,
	}
}

func (u *NotificationUseCase) NotifyFeePaid(ctx context.Context, n FeePaidNotice) (NotificationState, error) {
	app := n.Application
	log.Printf("[notify][usecase] fee-paid start user_id=%s fee_type=%s application_id=%s", n.UserID, n.FeeType, app.ID)
	if _, ok := feeWordings[n.FeeType]; !ok {
		return NotificationStateSkip, ErrUnsupportedNotificationFee
	}

	profile, err := u.profiles.GetByUserID(ctx, n.UserID)
	if err != nil {
		log.Printf("[notify][usecase] failed loading profile user_id=%s err=%v", n.UserID, err)
		return NotificationStateSkip, err
	}

	// Read the committed application again: approval state and the fee marker
	// must reflect what reconciliation just wrote.
	fresh, err := u.applications.Get(ctx, app.StudentID, app.ScholarshipID)
	if err != nil {
		log.Printf("[notify][usecase] failed loading application application_id=%s err=%v", app.ID, err)
		return NotificationStateSkip, err
	}
	if fresh.ID != "" {
		app = fresh
	}

	var feePaid, otherFeePaid bool
	switch n.FeeType {
	case entities.FeeTypeApplication:
		feePaid = app.ApplicationFeePaid
		otherFeePaid = profile.ScholarshipFeePaid || app.ScholarshipFeePaid
	case entities.FeeTypeScholarship:
		feePaid = profile.ScholarshipFeePaid || app.ScholarshipFeePaid
		otherFeePaid = app.ApplicationFeePaid || profile.ApplicationFeePaid
	}
	if !feePaid {
		log.Printf("[notify][usecase] skip: fee not marked paid user_id=%s fee_type=%s application_id=%s", n.UserID, n.FeeType, app.ID)
		metrics.Notifications.WithLabelValues("skipped").Inc()
		return NotificationStateSkip, nil
	}

	scholarship, err := u.directory.GetScholarship(ctx, app.ScholarshipID)
	if err != nil {
		return NotificationStateSkip, err
	}
	if scholarship.ID == "" {
		log.Printf("[notify][usecase] scholarship not found scholarship_id=%s", app.ScholarshipID)
		return NotificationStateSkip, ErrScholarshipNotFound
	}
	university, err := u.directory.GetUniversity(ctx, scholarship.UniversityID)
	if err != nil {
		return NotificationStateSkip, err
	}
	if university.ID == "" {
		log.Printf("[notify][usecase] university not found university_id=%s", scholarship.UniversityID)
		return NotificationStateSkip, ErrUniversityNotFound
	}

	msg, _ := composeFeePaidMessage(messageInput{
		FeeType:         n.FeeType,
		Approved:        app.Approved(),
		OtherFeePaid:    otherFeePaid,
		StudentName:     profile.FullName,
		ScholarshipName: scholarship.Title,
		UniversityName:  university.Name,
		Amount:          n.Amount,
		ApplicationID:   app.ID,
	})
	key := NotificationIdempotencyKey(university.ID, msg.Body)

	entry := entities.NotificationEntry{
		IdempotencyKey: key,
		UniversityID:   university.ID,
		Title:          msg.Title,
		Message:        msg.Body,
		Link:           msg.Link,
		Metadata: map[string]any{
			"student_id":     n.UserID,
			"application_id": app.ID,
			"scholarship_id": scholarship.ID,
			"fee_type":       string(n.FeeType),
			"state":          string(msg.State),
			"payment_id":     n.PaymentID,
		},
		CreatedAt: time.Now().UTC(),
	}

	err = u.notifications.Insert(ctx, entry)
	switch {
	case errors.Is(err, interfaces.ErrNotificationDuplicate):
		log.Printf("[notify][usecase] duplicate suppressed university_id=%s key=%s", university.ID, key)
		metrics.Notifications.WithLabelValues("duplicate").Inc()
		return msg.State, nil
	case err != nil:
		log.Printf("[notify][usecase] feed insert failed university_id=%s key=%s err=%v", university.ID, key, err)
		metrics.Notifications.WithLabelValues("failed").Inc()
	default:
		log.Printf("[notify][usecase] feed insert success university_id=%s key=%s state=%s", university.ID, key, msg.State)
		metrics.Notifications.WithLabelValues("inserted").Inc()
	}

	if u.email != nil {
		u.email.Forward(ctx, interfaces.EmailNotification{
			NotificationType: msg.NotificationType,
			StudentEmail:     strings.TrimSpace(profile.Email),
			StudentName:      profile.FullName,
			ScholarshipName:  scholarship.Title,
			UniversityName:   university.Name,
			UniversityEmail:  university.ContactEmail,
			Title:            msg.Title,
			MessageBody:      msg.Body,
			RedirectURL:      msg.Link,
			State:            string(msg.State),
			FeeType:          string(n.FeeType),
			Amount:           n.Amount,
			UserID:           n.UserID,
			ApplicationID:    app.ID,
			ScholarshipID:    scholarship.ID,
			UniversityID:     university.ID,
			PaymentID:        n.PaymentID,
			IdempotencyKey:   key,
			CorrelationID:    pkg.CorrelationID(ctx),
		})
	}
	return msg.State, nil
}
