package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-webhook/pkg/errors"
)

// NewOKResp returns the bare success envelope.
func NewOKResp() Resp {
	return Resp{OK: true}
}

// NewErrorResp returns a failure envelope carrying msg.
func NewErrorResp(msg string) Resp {
	return Resp{OK: false, Error: msg}
}

// OK sends 200 JSON. A nil data sends {"ok":true}.
func OK(c *gin.Context, data any) {
	if data == nil {
		data = NewOKResp()
	}
	c.JSON(http.StatusOK, data)
}

// Error sends the failure envelope with the status carried by err (500 by default).
func Error(c *gin.Context, err error) {
	c.JSON(pkgErrors.StatusCode(err), NewErrorResp(err.Error()))
}

// Unauthorized sends 401 and aborts the chain.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResp(MessageUnauthorized))
}

// Forbidden sends 403 and aborts the chain.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, NewErrorResp(MessageForbidden))
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, NewErrorResp(MessageTooManyRequests))
}

// BodyTooLarge sends 413 and aborts the chain.
func BodyTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, NewErrorResp(MessageBodyTooLarge))
}
