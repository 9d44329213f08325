package http

// Delivery metadata travels out of band as request headers.
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderWebhookID = "X-Webhook-Id"
	HeaderEventType = "X-Webhook-Event"
)

// registerRequest is the body of a registration call.
type registerRequest struct {
	WebhookID string `json:"webhook_id" binding:"required"`
	Secret    string `json:"secret" binding:"required"`
}
