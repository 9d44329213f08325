package model

import (
	"encoding/json"
	"time"
)

// StoredEvent is one admitted delivery recorded against a webhook. Payload
// is the body exactly as received; ReceivedAt is capture time at admission,
// not anything the sender supplied.
type StoredEvent struct {
	ID         string          `json:"id"`
	EventType  string          `json:"event_type"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}

// WebhookSummary is the listing view of a registered webhook. It never
// carries the secret.
type WebhookSummary struct {
	ID         string `json:"webhook_id"`
	EventCount int    `json:"event_count"`
}
