package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"fastbound-gateway/pkg/response"
)

// HeaderAPIKey carries the inbound API key.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth rejects requests whose X-API-Key header does not match the
// configured key. A no-op when no key is configured.
func (m Middleware) APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
