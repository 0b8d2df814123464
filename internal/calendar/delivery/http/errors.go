package http

import (
	"context"
	"errors"
	"net/http"

	"calendar-webhook/internal/calendar"
	"calendar-webhook/internal/middleware"
	pkgErrors "calendar-webhook/pkg/errors"
	"calendar-webhook/pkg/response"
)

var errInvalidBody = errors.New("invalid request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Only requests that cannot be dispatched (bad body, unknown op) are 400.
// Missing fields and Calendar API failures keep the 500 callers already
// handle; their message is the error text.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, calendar.ErrUnknownOp):
		return pkgErrors.NewBadRequestError(err.Error())
	case middleware.IsBodyTooLarge(err):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, response.MessageBodyTooLarge)
	default:
		return pkgErrors.NewInternalError(err)
	}
}

// logError logs caller mistakes as warnings and everything else as errors.
func (h *handler) logError(ctx context.Context, op string, err error) {
	var upstream *calendar.UpstreamError
	switch {
	case calendar.IsValidation(err):
		h.l.Warnf(ctx, "%s: %v", op, err)
	case errors.As(err, &upstream):
		h.l.Errorf(ctx, "%s: calendar API: %v", op, err)
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
}
