package usecase

import (
	"context"

	"webhook-receiver/internal/metrics"
	"webhook-receiver/internal/webhook"
)

// Register creates or replaces a webhook entry. Re-registering an existing
// id rotates the secret and resets the event log, matching the
// replace-entry semantics of registration.
func (uc *implUseCase) Register(ctx context.Context, input webhook.RegisterInput) error {
	if err := uc.repo.Register(input.WebhookID, input.Secret); err != nil {
		uc.l.Warnf(ctx, "registration rejected for webhook %q: %v", input.WebhookID, err)
		metrics.Registrations.WithLabelValues("rejected").Inc()
		return err
	}

	uc.l.Infof(ctx, "webhook %q registered", input.WebhookID)
	metrics.Registrations.WithLabelValues("registered").Inc()
	return nil
}
