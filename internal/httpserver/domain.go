package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "calendar-webhook/internal/calendar/delivery/http"
	calendarRepo "calendar-webhook/internal/calendar/repository/gcal"
	calendarUC "calendar-webhook/internal/calendar/usecase"
	"calendar-webhook/internal/middleware"
)

// setupCalendarDomain wires the calendar domain and registers POST /calendar.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, r gin.IRoutes, mw middleware.Middleware) error {
	// 1. Repository
	repo := calendarRepo.New(srv.calendarClient, srv.calendarID, srv.l)

	// 2. UseCase
	uc := calendarUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := calendarHTTP.New(srv.l, uc)

	// 4. Routes
	calendarHTTP.RegisterRoutes(r, h, mw)

	srv.l.Infof(ctx, "Calendar domain registered at POST /calendar (calendar %s)", srv.calendarID)
	return nil
}
