package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"calendar-webhook/pkg/response"
)

// SecretHeader carries the shared secret on every webhook call.
const SecretHeader = "X-WC-SECRET"

// Auth rejects requests whose secret header is missing or wrong.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(SecretHeader)
		if got == "" || len(m.secret) == 0 || subtle.ConstantTimeCompare([]byte(got), m.secret) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
