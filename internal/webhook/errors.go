package webhook

import "errors"

// Domain-specific errors for the webhook package. Every rejection an admit
// or register call can produce maps to exactly one of these kinds.
var (
	ErrInvalidArgument  = errors.New("webhook id and secret must not be empty")
	ErrMissingSignature = errors.New("missing signature header")
	ErrMissingWebhookID = errors.New("missing webhook id header")
	ErrUnknownWebhook   = errors.New("unknown webhook id")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrNotFound         = errors.New("webhook not found")
)
