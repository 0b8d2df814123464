package http

import (
	"encoding/json"

	"calendar-webhook/internal/calendar"
	"calendar-webhook/pkg/response"
)

// --- Request DTOs ---

// calendarReq is the union of every op's fields. Which ones matter depends on Op.
// Op stays raw so that a non-string op is reported as unknown, not as a bad body.
type calendarReq struct {
	Op json.RawMessage `json:"op" swaggertype:"string"`

	// create
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Tags        map[string]string `json:"tags"`
	AllDay      truthy            `json:"allDay"`
	Date        string            `json:"date"`
	EndDate     string            `json:"endDate"`
	Start       string            `json:"start"`
	End         string            `json:"end"`

	// update, delete
	EventID string          `json:"eventId"`
	Patch   json.RawMessage `json:"patch"`
}

// op resolves the requested operation. Only an absent op defaults to create.
func (r calendarReq) op() (calendar.Op, error) {
	if len(r.Op) == 0 {
		return calendar.OpCreate, nil
	}
	var raw string
	if err := json.Unmarshal(r.Op, &raw); err != nil {
		return "", calendar.ErrUnknownOp
	}
	return calendar.ParseOp(raw)
}

func (r calendarReq) toCreateInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Tags:        r.Tags,
		AllDay:      bool(r.AllDay),
		Date:        r.Date,
		EndDate:     r.EndDate,
		Start:       r.Start,
		End:         r.End,
	}
}

func (r calendarReq) toUpdateInput() calendar.UpdateEventInput {
	return calendar.UpdateEventInput{
		EventID: r.EventID,
		Patch:   r.Patch,
	}
}

func (r calendarReq) toDeleteInput() calendar.DeleteEventInput {
	return calendar.DeleteEventInput{EventID: r.EventID}
}

// --- Response DTOs ---

type eventResp struct {
	response.Resp
	EventID  string `json:"eventId"`
	HTMLLink string `json:"htmlLink"`
}

func (h *handler) newCreateResp(out calendar.CreateEventOutput) eventResp {
	return eventResp{Resp: response.NewOKResp(), EventID: out.Event.ID, HTMLLink: out.Event.HTMLLink}
}

func (h *handler) newUpdateResp(out calendar.UpdateEventOutput) eventResp {
	return eventResp{Resp: response.NewOKResp(), EventID: out.Event.ID, HTMLLink: out.Event.HTMLLink}
}

type deleteResp struct {
	response.Resp
	Deleted bool `json:"deleted"`
}

func (h *handler) newDeleteResp() deleteResp {
	return deleteResp{Resp: response.NewOKResp(), Deleted: true}
}
