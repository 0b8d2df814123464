package http

import (
	"github.com/gin-gonic/gin"

	"calendar-webhook/internal/calendar"
	"calendar-webhook/pkg/response"
)

// Handle godoc
// @Summary     Create, update or delete a calendar event
// @Description Dispatches on op (create by default). Requires the X-WC-SECRET header.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       X-WC-SECRET header string      true "Shared secret"
// @Param       body        body   calendarReq true "Operation"
// @Success     200 {object} eventResp  "create/update"
// @Success     200 {object} deleteResp "delete"
// @Failure     400 {object} response.Resp "Unknown op or malformed body"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Missing field or Calendar API error"
// @Router      /calendar [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processCalendarReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	op, err := req.op()
	if err != nil {
		h.l.Warnf(ctx, "unknown op %s", req.Op)
		response.Error(c, h.mapError(err))
		return
	}

	switch op {
	case calendar.OpCreate:
		h.create(c, req)
	case calendar.OpUpdate:
		h.update(c, req)
	case calendar.OpDelete:
		h.delete(c, req)
	}
}

func (h *handler) create(c *gin.Context, req calendarReq) {
	ctx := c.Request.Context()

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.logError(ctx, "uc.Create", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

func (h *handler) update(c *gin.Context, req calendarReq) {
	ctx := c.Request.Context()

	output, err := h.uc.Update(ctx, req.toUpdateInput())
	if err != nil {
		h.logError(ctx, "uc.Update", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

func (h *handler) delete(c *gin.Context, req calendarReq) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, req.toDeleteInput()); err != nil {
		h.logError(ctx, "uc.Delete", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeleteResp())
}
