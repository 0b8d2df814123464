package repository

import (
	"encoding/json"

	"calendar-webhook/internal/calendar"
)

// InsertEventOptions is the event resource to create.
type InsertEventOptions struct {
	Summary      string
	Description  string
	Location     string
	Transparency string
	PrivateProps map[string]string
	Start        calendar.EventTime
	End          calendar.EventTime
}

// PatchEventOptions holds a partial event resource sent untouched.
type PatchEventOptions struct {
	EventID string
	Patch   json.RawMessage
}
