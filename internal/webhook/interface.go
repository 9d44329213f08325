package webhook

import (
	"context"

	"webhook-receiver/internal/model"
)

// UseCase defines the business logic interface for the webhook domain.
type UseCase interface {
	// Register creates or replaces the entry for the given id. Re-registering
	// an existing id rotates the secret and clears its event log.
	Register(ctx context.Context, input RegisterInput) error

	// Admit verifies a candidate delivery and, when authentic, records it
	// against its webhook. Rejections never mutate the registry.
	Admit(ctx context.Context, input AdmitInput) (AdmitOutput, error)

	// List returns all registered webhooks with their admitted event counts.
	List(ctx context.Context) ([]model.WebhookSummary, error)

	// Events returns the admitted events of one webhook in admission order.
	Events(ctx context.Context, webhookID string) ([]model.StoredEvent, error)
}
