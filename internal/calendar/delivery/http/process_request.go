package http

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processCalendarReq reads and decodes the webhook body. An empty body is
// treated as {} so that it fails on the missing fields, like any other call.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq

	body, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := binding.JSON.BindBody(body, &req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
