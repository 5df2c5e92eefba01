package sidechannel

import (
	"context"
	"log"

	"tuition_billing/internal/usecase/interfaces"
)

const ChannelEmail = "email"

// EmailWebhook forwards university notifications to the email-delivery webhook.
type EmailWebhook struct {
	client *BestEffortClient
	url    string
}

var _ interfaces.IEmailForwarder = (*EmailWebhook)(nil)

func NewEmailWebhook(client *BestEffortClient, url string) *EmailWebhook {
	return &EmailWebhook{client: client, url: url}
}

func (w *EmailWebhook) Forward(ctx context.Context, n interfaces.EmailNotification) {
	headers := map[string]string{"Idempotency-Key": n.IdempotencyKey}
	out := w.client.PostJSON(ctx, ChannelEmail, w.url, n, headers)
	log.Printf("[sidechannel][email] forward university_id=%s type=%s outcome=%s status=%d", n.UniversityID, n.NotificationType, out.Label, out.StatusCode)
}
