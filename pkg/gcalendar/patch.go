package gcalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// normalizePatch checks that raw is a JSON object and returns it unchanged.
// An absent or null patch becomes {}.
func normalizePatch(raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []byte("{}"), nil
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidPatch
	}
	return trimmed, nil
}

// sendPatch issues events.patch with body as the request body. The typed
// EventsPatchCall re-encodes through calendar.Event, which drops unknown keys
// and nested zero values.
func (c *Client) sendPatch(ctx context.Context, calendarID, eventID string, body []byte) (*calendar.Event, error) {
	u := c.service.BasePath + "calendars/" + url.PathEscape(calendarID) +
		"/events/" + url.PathEscape(eventID) + "?alt=json&prettyPrint=false"

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer googleapi.CloseBody(resp)

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, err
	}

	var event calendar.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}
