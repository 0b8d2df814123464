package calendar

import "encoding/json"

// Op is the mutation requested by a webhook call.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// ParseOp maps the op field to an Op. Matching is exact; defaulting an absent
// field to create is up to the caller.
func ParseOp(raw string) (Op, error) {
	switch Op(raw) {
	case OpCreate:
		return OpCreate, nil
	case OpUpdate:
		return OpUpdate, nil
	case OpDelete:
		return OpDelete, nil
	default:
		return "", ErrUnknownOp
	}
}

// Transparency values of the Calendar API event resource.
const (
	TransparencyTransparent = "transparent"
)

// --- Domain Model ---

// Event is the reference to a calendar event returned to callers.
type Event struct {
	ID       string
	HTMLLink string
}

// EventTime is either an all-day date (YYYY-MM-DD) or an RFC3339 timestamp.
// Exactly one field is set.
type EventTime struct {
	Date     string
	DateTime string
}

// --- UseCase Inputs ---

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Tags        map[string]string

	AllDay  bool
	Date    string // all-day start
	EndDate string // all-day exclusive end; next day of Date when empty

	Start string // timed start, passed through
	End   string // timed end, passed through
}

type UpdateEventInput struct {
	EventID string
	Patch   json.RawMessage
}

type DeleteEventInput struct {
	EventID string
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event Event
}

type UpdateEventOutput struct {
	Event Event
}
