package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"tuition_billing/internal/domain/entities"
)

// NotificationState is the outcome of the fee-paid notification decision.
type NotificationState string

const (
	NotificationStateSkip                    NotificationState = "skip"
	NotificationStateAwaitingApproval        NotificationState = "awaiting-approval"
	NotificationStateApprovedFeePaid         NotificationState = "approved-fee-paid"
	NotificationStateApprovedOtherFeePending NotificationState = "approved-other-fee-pending"
)

const (
	reviewQueuePath = "/school/dashboard/selection-process"
	rosterPath      = "/school/dashboard/students"
)

type feeWording struct {
	title            string
	notificationType string
	feeName          string
	otherFeeName     string
}

var feeWordings = map[entities.FeeType]feeWording{
	entities.FeeTypeApplication: {
		title:            "Application fee paid",
		notificationType: "application_fee_paid",
		feeName:          "application fee",
		otherFeeName:     "scholarship fee",
	},
	entities.FeeTypeScholarship: {
		title:            "Scholarship fee paid",
		notificationType: "scholarship_fee_paid",
		feeName:          "scholarship fee",
		otherFeeName:     "application fee",
	},
}

type feePaidMessage struct {
	State            NotificationState
	Title            string
	NotificationType string
	Body             string
	Link             string
}

type messageInput struct {
	FeeType         entities.FeeType
	Approved        bool
	OtherFeePaid    bool
	StudentName     string
	ScholarshipName string
	UniversityName  string
	Amount          float64
	ApplicationID   string
}

// composeFeePaidMessage picks one of four variants from
// {application approved?} x {other fee of the pair paid?}.
func composeFeePaidMessage(in messageInput) (feePaidMessage, bool) {
	w, ok := feeWordings[in.FeeType]
	if !ok {
		return feePaidMessage{State: NotificationStateSkip}, false
	}

	lead := fmt.Sprintf("Student %s paid the %s%s for the %s scholarship at %s.",
		displayName(in.StudentName, "(unknown student)"),
		w.feeName,
		formatAmount(in.Amount),
		displayName(in.ScholarshipName, "(unnamed)"),
		displayName(in.UniversityName, "your university"),
	)

	msg := feePaidMessage{Title: w.title, NotificationType: w.notificationType}
	switch {
	case !in.Approved && !in.OtherFeePaid:
		msg.State = NotificationStateAwaitingApproval
		msg.Body = lead + " The application is waiting for your review."
		msg.Link = reviewQueuePath
	case !in.Approved && in.OtherFeePaid:
		msg.State = NotificationStateAwaitingApproval
		msg.Body = fmt.Sprintf("%s The %s is already paid and the application is waiting for your review.", lead, w.otherFeeName)
		msg.Link = reviewQueuePath
	case in.Approved && in.OtherFeePaid:
		msg.State = NotificationStateApprovedFeePaid
		msg.Body = lead + " All fees for this approved application are paid."
		msg.Link = rosterPath
	default:
		msg.State = NotificationStateApprovedOtherFeePending
		msg.Body = fmt.Sprintf("%s The application is approved; the %s is still pending.", lead, w.otherFeeName)
		msg.Link = rosterPath
	}
	if in.ApplicationID != "" {
		msg.Link += "?application_id=" + url.QueryEscape(in.ApplicationID)
	}
	return msg, true
}

// NotificationIdempotencyKey digests (university id, normalized message) into a
// fixed 64 character key.
func NotificationIdempotencyKey(universityID, message string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(message), " "))
	sum := sha256.Sum256([]byte(strings.TrimSpace(universityID) + "\x00" + normalized))
	return hex.EncodeToString(sum[:])
}

func formatAmount(amount float64) string {
	if amount <= 0 {
		return ""
	}
	return fmt.Sprintf(" ($%.2f)", amount)
}

func displayName(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
