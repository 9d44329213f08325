package repository

import "webhook-receiver/internal/model"

// Registry is the storage contract for webhook entries and their event
// logs. Implementations must be safe for concurrent use; appends to
// different ids must not block each other.
type Registry interface {
	// Register creates or replaces the entry for id with an empty event log.
	// Fails with webhook.ErrInvalidArgument when id or secret is empty.
	Register(id string, secret []byte) error

	// Secret returns the shared secret for id. Only the delivery verifier
	// may call it; the secret never crosses any other boundary.
	Secret(id string) ([]byte, bool)

	// AppendEvent appends ev to the entry's log. Fails with
	// webhook.ErrNotFound when id is unknown.
	AppendEvent(id string, ev model.StoredEvent) error

	// List returns a snapshot of all entries in registration order.
	List() []model.WebhookSummary

	// EventsOf returns a copy of the entry's events in admission order, or
	// false when id is unknown.
	EventsOf(id string) ([]model.StoredEvent, bool)
}
