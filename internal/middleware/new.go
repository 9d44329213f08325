package middleware

import (
	pkgLog "webhook-receiver/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares of the service.
type Middleware struct {
	l       pkgLog.Logger
	limiter *sourceLimiter
	trusted []string
}

// New creates the middleware set. requestsPerMin bounds deliveries per
// source IP; trustedSources lists the IPs or CIDR ranges allowed to
// deliver (empty means no restriction).
func New(l pkgLog.Logger, requestsPerMin int, trustedSources []string) Middleware {
	return Middleware{
		l:       l,
		limiter: newSourceLimiter(requestsPerMin),
		trusted: trustedSources,
	}
}
