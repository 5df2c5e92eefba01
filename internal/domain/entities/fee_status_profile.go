package entities

// FeeStatusProfile holds one monotonic paid flag per fee type for a user.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// FullName and Email are informational and only read by the notification fan-out.
type FeeStatusProfile struct {
	UserID                  string `json:"user_id"`
	FullName                string `json:"full_name"`
	Email                   string `json:"email"`
	SelectionProcessFeePaid bool   `json:"has_paid_selection_process_fee"`
	ApplicationFeePaid      bool   `json:"is_application_fee_paid"`
	ScholarshipFeePaid      bool   `json:"is_scholarship_fee_paid"`
	EnrollmentFeePaid       bool   `json:"has_paid_enrollment_fee"`
	I20ControlFeePaid       bool   `json:"has_paid_i20_control_fee"`
}

// FlagAttribute returns the storage attribute holding the paid flag of f.
func FlagAttribute(f FeeType) (string, bool) {
	switch f {
	case FeeTypeSelectionProcess:
		return "has_paid_selection_process_fee", true
	case FeeTypeApplication:
		return "is_application_fee_paid", true
	case FeeTypeScholarship:
		return "is_scholarship_fee_paid", true
	case FeeTypeEnrollment:
		return "has_paid_enrollment_fee", true
	case FeeTypeI20Control:
		return "has_paid_i20_control_fee", true
	}
	return "", false
}

func (p FeeStatusProfile) Paid(f FeeType) bool {
	switch f {
	case FeeTypeSelectionProcess:
		return p.SelectionProcessFeePaid
	case FeeTypeApplication:
		return p.ApplicationFeePaid
	case FeeTypeScholarship:
		return p.ScholarshipFeePaid
	case FeeTypeEnrollment:
		return p.EnrollmentFeePaid
	case FeeTypeI20Control:
		return p.I20ControlFeePaid
	}
	return false
}
