package repository

import (
	"context"

	"calendar-webhook/internal/calendar"
)

// Repository is the composed interface for the calendar event store.
type Repository interface {
	EventRepository
}

// EventRepository defines every call made against the external calendar.
type EventRepository interface {
	InsertEvent(ctx context.Context, opt InsertEventOptions) (calendar.Event, error)
	PatchEvent(ctx context.Context, opt PatchEventOptions) (calendar.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
