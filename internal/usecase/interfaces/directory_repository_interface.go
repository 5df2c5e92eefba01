package interfaces

import (
	"context"
	"tuition_billing/internal/domain/entities"
)

// IDirectoryRepository reads scholarship and university records. Zero values mean not found.
type IDirectoryRepository interface {
	GetScholarship(ctx context.Context, id string) (entities.Scholarship, error)
	GetUniversity(ctx context.Context, id string) (entities.University, error)
}
