package interfaces

import (
	"context"
	"errors"
	"tuition_billing/internal/domain/entities"
)

// ErrNotificationDuplicate is returned by Insert when the idempotency key already exists.
var ErrNotificationDuplicate = errors.New("notification already exists")

type INotificationRepository interface {
	Insert(ctx context.Context, n entities.NotificationEntry) error
}
