package interfaces

import (
	"context"
	"tuition_billing/internal/domain/entities"
)

// IApplicationRepository abstracts the (student, scholarship) application records.
//
// MarkApplicationFeePaid is a keyed upsert: it creates the record in
// under_review when absent and always sets the application-fee marker.
// MarkScholarshipFeePaid only touches existing records and returns a zero
// record when the application does not exist.
type IApplicationRepository interface {
	Get(ctx context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error)
	ListByStudentID(ctx context.Context, studentID string) ([]entities.ApplicationRecord, error)
	MarkApplicationFeePaid(ctx context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error)
	MarkScholarshipFeePaid(ctx context.Context, studentID, scholarshipID string) (entities.ApplicationRecord, error)
}
