package entities

import "time"

// NotificationEntry is a university-facing inbox event.
//
// Storage model (DynamoDB):
//   - PK: idempotency_key (unique; a second insert with the same key is discarded)
type NotificationEntry struct {
	IdempotencyKey string         `json:"idempotency_key"`
	UniversityID   string         `json:"university_id"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Link           string         `json:"link"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
