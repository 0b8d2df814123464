package usecase

import (
	"context"

	"calendar-webhook/internal/calendar"
	"calendar-webhook/internal/calendar/repository"
)

// Mock repository for testing
type mockRepo struct {
	insertOpts []repository.InsertEventOptions
	patchOpts  []repository.PatchEventOptions
	deletedIDs []string
	event      calendar.Event
	insertErr  error
	patchErr   error
	deleteErr  error
}

func (m *mockRepo) InsertEvent(ctx context.Context, opt repository.InsertEventOptions) (calendar.Event, error) {
	m.insertOpts = append(m.insertOpts, opt)
	return m.event, m.insertErr
}

func (m *mockRepo) PatchEvent(ctx context.Context, opt repository.PatchEventOptions) (calendar.Event, error) {
	m.patchOpts = append(m.patchOpts, opt)
	return m.event, m.patchErr
}

func (m *mockRepo) DeleteEvent(ctx context.Context, eventID string) error {
	m.deletedIDs = append(m.deletedIDs, eventID)
	return m.deleteErr
}
