package webhook

import "time"

// RegisterInput is the input for webhook registration. The id is chosen by
// the registrant, not generated here.
type RegisterInput struct {
	WebhookID string
	Secret    []byte
}

// AdmitInput is one candidate delivery as handed over by the transport
// layer: the raw JSON body plus the three out-of-band header values.
type AdmitInput struct {
	WebhookID string // X-Webhook-Id header
	Signature string // X-Webhook-Signature header, lowercase hex
	EventType string // X-Webhook-Event header
	Payload   []byte // request body, verbatim
}

// AdmitOutput describes the recorded event after a successful admission.
type AdmitOutput struct {
	EventID    string
	ReceivedAt time.Time
}
