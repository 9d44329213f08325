// Package memory holds the in-memory Registry implementation. State lives
// for the process lifetime only; nothing is persisted.
package memory

import (
	"sync"

	"webhook-receiver/internal/model"
	"webhook-receiver/internal/webhook"
)

// entry guards its own event log so that concurrent appends to different
// webhooks never contend on the same lock.
type entry struct {
	mu     sync.Mutex
	secret []byte
	events []model.StoredEvent
}

// Registry is the in-memory webhook store. The top-level map is guarded by
// an RWMutex; each entry serializes its own appends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string // registration order, for deterministic listings
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register creates or replaces the entry for id. Replacing an existing
// entry resets its event log.
func (r *Registry) Register(id string, secret []byte) error {
	if id == "" || len(secret) == 0 {
		return webhook.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = &entry{secret: append([]byte(nil), secret...)}
	return nil
}

// Secret returns a copy of the shared secret for id.
func (r *Registry) Secret(id string) ([]byte, bool) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return append([]byte(nil), e.secret...), true
}

// AppendEvent appends ev to the entry's log.
func (r *Registry) AppendEvent(id string, ev model.StoredEvent) error {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return webhook.ErrNotFound
	}

	e.mu.Lock()
	e.events = append(e.events, ev)
	e.mu.Unlock()
	return nil
}

// List returns all registered ids with their current event counts, in
// registration order.
func (r *Registry) List() []model.WebhookSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]model.WebhookSummary, 0, len(r.order))
	for _, id := range r.order {
		e, ok := r.entries[id]
		if !ok {
			continue
		}
		e.mu.Lock()
		count := len(e.events)
		e.mu.Unlock()
		summaries = append(summaries, model.WebhookSummary{ID: id, EventCount: count})
	}
	return summaries
}

// EventsOf returns a copy of the entry's events in admission order.
func (r *Registry) EventsOf(id string) ([]model.StoredEvent, bool) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	events := make([]model.StoredEvent, len(e.events))
	copy(events, e.events)
	e.mu.Unlock()
	return events, true
}
