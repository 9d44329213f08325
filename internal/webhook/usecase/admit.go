package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"webhook-receiver/internal/metrics"
	"webhook-receiver/internal/model"
	"webhook-receiver/internal/webhook"
	"webhook-receiver/pkg/canonical"
	"webhook-receiver/pkg/signature"
)

// unverifiedEventType is the metric label used in place of the sender's
// event-type header for rejected deliveries, which are unauthenticated
// input and must not drive label cardinality.
const unverifiedEventType = "unverified"

// Admit runs the per-delivery state machine: presence checks, registry
// lookup, signature recomputation over the canonical payload encoding,
// constant-time comparison, then append. Both presence checks run before
// any cryptographic work.
func (uc *implUseCase) Admit(ctx context.Context, input webhook.AdmitInput) (webhook.AdmitOutput, error) {
	if input.Signature == "" {
		return webhook.AdmitOutput{}, uc.reject(ctx, input, webhook.ErrMissingSignature)
	}
	if input.WebhookID == "" {
		return webhook.AdmitOutput{}, uc.reject(ctx, input, webhook.ErrMissingWebhookID)
	}

	secret, ok := uc.repo.Secret(input.WebhookID)
	if !ok {
		return webhook.AdmitOutput{}, uc.reject(ctx, input, webhook.ErrUnknownWebhook)
	}

	signed, err := canonical.Encode(input.Payload)
	if err != nil {
		// A payload that cannot be canonicalized can never match a
		// signature computed over a canonical encoding. The decode detail
		// stays in the log; the caller sees the plain rejection kind.
		uc.l.Debugf(ctx, "payload canonicalization failed for webhook %q: %v", input.WebhookID, err)
		return webhook.AdmitOutput{}, uc.reject(ctx, input, webhook.ErrInvalidSignature)
	}

	if !signature.Verify(secret, signed, input.Signature) {
		return webhook.AdmitOutput{}, uc.reject(ctx, input, webhook.ErrInvalidSignature)
	}

	ev := model.StoredEvent{
		ID:         uuid.NewString(),
		EventType:  input.EventType,
		Payload:    append(json.RawMessage(nil), input.Payload...),
		ReceivedAt: time.Now(),
	}
	if err := uc.repo.AppendEvent(input.WebhookID, ev); err != nil {
		return webhook.AdmitOutput{}, uc.reject(ctx, input, err)
	}

	uc.l.Infof(ctx, "delivery admitted for webhook %q: event %s (%s)", input.WebhookID, ev.ID, ev.EventType)
	metrics.Deliveries.WithLabelValues(input.EventType, "admitted").Inc()

	return webhook.AdmitOutput{EventID: ev.ID, ReceivedAt: ev.ReceivedAt}, nil
}

// reject logs and counts one rejection, then passes the kind back to the
// caller unchanged. Rejected deliveries are unauthenticated, so their
// event-type header never becomes a metric label.
func (uc *implUseCase) reject(ctx context.Context, input webhook.AdmitInput, err error) error {
	uc.l.Warnf(ctx, "delivery rejected for webhook %q: %v", input.WebhookID, err)
	metrics.Deliveries.WithLabelValues(unverifiedEventType, rejectionOutcome(err)).Inc()
	return err
}

func rejectionOutcome(err error) string {
	switch {
	case errors.Is(err, webhook.ErrMissingSignature):
		return "missing_signature"
	case errors.Is(err, webhook.ErrMissingWebhookID):
		return "missing_webhook_id"
	case errors.Is(err, webhook.ErrUnknownWebhook):
		return "unknown_webhook"
	case errors.Is(err, webhook.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "rejected"
	}
}
