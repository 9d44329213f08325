package usecase

import (
	"context"

	"webhook-receiver/internal/model"
	"webhook-receiver/internal/webhook"
)

// List returns all registered webhooks with their admitted event counts.
func (uc *implUseCase) List(ctx context.Context) ([]model.WebhookSummary, error) {
	return uc.repo.List(), nil
}

// Events returns the admitted events of one webhook in admission order.
func (uc *implUseCase) Events(ctx context.Context, webhookID string) ([]model.StoredEvent, error) {
	events, ok := uc.repo.EventsOf(webhookID)
	if !ok {
		return nil, webhook.ErrNotFound
	}
	return events, nil
}
