package gcal

import (
	"context"
	"errors"

	gcalapi "google.golang.org/api/calendar/v3"

	"calendar-webhook/internal/calendar"
	"calendar-webhook/internal/calendar/repository"
	"calendar-webhook/pkg/gcalendar"
)

// InsertEvent maps opt to the Calendar API event resource and creates it.
func (r *implRepository) InsertEvent(ctx context.Context, opt repository.InsertEventOptions) (calendar.Event, error) {
	props := opt.PrivateProps
	if props == nil {
		props = map[string]string{}
	}

	event := &gcalapi.Event{
		Summary:      opt.Summary,
		Description:  opt.Description,
		Location:     opt.Location,
		Transparency: opt.Transparency,
		ExtendedProperties: &gcalapi.EventExtendedProperties{
			Private: props,
			// an empty tag map is still sent as {}
			ForceSendFields: []string{"Private"},
		},
		Start: toEventDateTime(opt.Start),
		End:   toEventDateTime(opt.End),
	}

	created, err := r.client.InsertEvent(ctx, r.calendarID, event)
	if err != nil {
		r.l.Errorf(ctx, "repository.gcal.InsertEvent: %v", err)
		return calendar.Event{}, mapError(err)
	}

	return calendar.Event{ID: created.ID, HTMLLink: created.HTMLLink}, nil
}

// PatchEvent forwards opt.Patch verbatim.
func (r *implRepository) PatchEvent(ctx context.Context, opt repository.PatchEventOptions) (calendar.Event, error) {
	updated, err := r.client.PatchEvent(ctx, r.calendarID, opt.EventID, opt.Patch)
	if err != nil {
		r.l.Errorf(ctx, "repository.gcal.PatchEvent %s: %v", opt.EventID, err)
		return calendar.Event{}, mapError(err)
	}

	return calendar.Event{ID: updated.ID, HTMLLink: updated.HTMLLink}, nil
}

// DeleteEvent removes eventID. It is not idempotent: the API rejects ids that
// are already gone.
func (r *implRepository) DeleteEvent(ctx context.Context, eventID string) error {
	if err := r.client.DeleteEvent(ctx, r.calendarID, eventID); err != nil {
		r.l.Errorf(ctx, "repository.gcal.DeleteEvent %s: %v", eventID, err)
		return mapError(err)
	}
	return nil
}

func toEventDateTime(t calendar.EventTime) *gcalapi.EventDateTime {
	if t.Date != "" {
		return &gcalapi.EventDateTime{Date: t.Date}
	}
	return &gcalapi.EventDateTime{DateTime: t.DateTime}
}

func mapError(err error) error {
	if errors.Is(err, gcalendar.ErrInvalidPatch) {
		return calendar.ErrInvalidPatch
	}
	return &calendar.UpstreamError{Err: err}
}
