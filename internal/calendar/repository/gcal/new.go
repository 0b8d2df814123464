package gcal

import (
	"context"
	"encoding/json"

	gcalapi "google.golang.org/api/calendar/v3"

	"calendar-webhook/internal/calendar/repository"
	"calendar-webhook/pkg/gcalendar"
	"calendar-webhook/pkg/log"
)

// Client is the subset of gcalendar.Client used by the repository.
type Client interface {
	InsertEvent(ctx context.Context, calendarID string, event *gcalapi.Event) (*gcalendar.Event, error)
	PatchEvent(ctx context.Context, calendarID, eventID string, patch json.RawMessage) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type implRepository struct {
	client     Client
	calendarID string
	l          log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Repository bound to a single calendar.
func New(client Client, calendarID string, l log.Logger) repository.Repository {
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		l:          l,
	}
}
