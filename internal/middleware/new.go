package middleware

import (
	"fastbound-gateway/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares: request IDs, request
// logging, static API-key auth, and per-client rate limiting.
type Middleware struct {
	l       log.Logger
	apiKey  string
	limiter *clientRateLimiter
}

// New creates the middleware set. An empty apiKey disables inbound auth.
func New(l log.Logger, apiKey string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		apiKey:  apiKey,
		limiter: newClientRateLimiter(rateLimitPerMin),
	}
}
