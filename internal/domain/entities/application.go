package entities

import "time"

// ApplicationStatus is the coarse enrollment-progress status set by the university.
type ApplicationStatus string

const (
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusEnrolled    ApplicationStatus = "enrolled"
)

// ApplicationRecord is the (student, scholarship) enrollment-progress record.
//
// Storage model (DynamoDB):
//   - PK: id (student_id#scholarship_id, one record per pair)
//   - GSI1 (student_id-index): student_id
type ApplicationRecord struct {
	ID                 string            `json:"id"`
	StudentID          string            `json:"student_id"`
	ScholarshipID      string            `json:"scholarship_id"`
	Status             ApplicationStatus `json:"status"`
	ApplicationFeePaid bool              `json:"is_application_fee_paid"`
	ScholarshipFeePaid bool              `json:"is_scholarship_fee_paid"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func ApplicationID(studentID, scholarshipID string) string {
	return studentID + "#" + scholarshipID
}

// Approved reports whether the university already accepted the student.
func (a ApplicationRecord) Approved() bool {
	return a.Status == ApplicationStatusApproved || a.Status == ApplicationStatusEnrolled
}
