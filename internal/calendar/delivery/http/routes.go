package http

import (
	"github.com/gin-gonic/gin"

	"calendar-webhook/internal/middleware"
)

// RegisterRoutes maps the webhook path to the handler behind the request guards.
// Order matters: cheap rejections (IP, rate, auth) run before the body is read.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/calendar",
		mw.IPAllowlist(),
		mw.RateLimit(),
		mw.Auth(),
		mw.BodyLimit(),
		h.Handle,
	)
}
