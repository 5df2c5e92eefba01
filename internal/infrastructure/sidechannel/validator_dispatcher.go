package sidechannel

import (
	"context"
	"log"

	"tuition_billing/internal/usecase/interfaces"
)

const ChannelValidator = "validator"

// ValidatorDispatcher hands a claim to the external proof validator, which
// answers later on the claim-scoped verdict callback.
type ValidatorDispatcher struct {
	client *BestEffortClient
	url    string
}

var _ interfaces.IValidatorDispatcher = (*ValidatorDispatcher)(nil)

func NewValidatorDispatcher(client *BestEffortClient, url string) *ValidatorDispatcher {
	return &ValidatorDispatcher{client: client, url: url}
}

func (d *ValidatorDispatcher) Dispatch(ctx context.Context, req interfaces.ValidationRequest) {
	out := d.client.PostJSON(ctx, ChannelValidator, d.url, req, nil)
	log.Printf("[sidechannel][validator] dispatch payment_id=%s outcome=%s status=%d duration=%s", req.PaymentID, out.Label, out.StatusCode, out.Duration)
}
