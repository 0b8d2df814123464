package usecase

import (
	"bytes"
	"context"
	"encoding/json"

	"calendar-webhook/internal/calendar"
	repo "calendar-webhook/internal/calendar/repository"
)

// Update forwards input.Patch to the event without touching it. A missing
// patch is sent as an empty object.
func (uc *implUseCase) Update(ctx context.Context, input calendar.UpdateEventInput) (calendar.UpdateEventOutput, error) {
	if input.EventID == "" {
		return calendar.UpdateEventOutput{}, calendar.ErrMissingEventID
	}

	patch, err := normalizePatch(input.Patch)
	if err != nil {
		return calendar.UpdateEventOutput{}, err
	}

	event, err := uc.repo.PatchEvent(ctx, repo.PatchEventOptions{
		EventID: input.EventID,
		Patch:   patch,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update PatchEvent: %v", err)
		return calendar.UpdateEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Update: patched event %s", event.ID)
	return calendar.UpdateEventOutput{Event: event}, nil
}

// Delete removes an event. Deleting the same id twice fails the second time.
func (uc *implUseCase) Delete(ctx context.Context, input calendar.DeleteEventInput) error {
	if input.EventID == "" {
		return calendar.ErrMissingEventID
	}

	if err := uc.repo.DeleteEvent(ctx, input.EventID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.Delete: deleted event %s", input.EventID)
	return nil
}

// normalizePatch accepts a JSON object, or nothing at all.
func normalizePatch(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("{}"), nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, calendar.ErrInvalidPatch
	}
	return trimmed, nil
}
