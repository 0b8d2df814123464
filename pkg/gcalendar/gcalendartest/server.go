// Package gcalendartest provides a fake Google Calendar API v3 server for
// tests. It implements the events insert, patch and delete endpoints and
// records every request body it receives.
package gcalendartest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Request is a request received by the fake server.
type Request struct {
	Method     string
	CalendarID string
	EventID    string
	Header     http.Header
	Body       []byte
}

// Server is a fake Google Calendar API server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	events   map[string]map[string]map[string]any // calendarID -> eventID -> event
	deleted  map[string]bool                      // calendarID/eventID
	requests []Request
	nextID   int
	failWith int
}

// NewServer starts a fake server. Call Close when done.
func NewServer() *Server {
	s := &Server{
		events:  make(map[string]map[string]map[string]any),
		deleted: make(map[string]bool),
		nextID:  1,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// HTTPClient returns a client that sends every request to the fake server,
// whatever host the Calendar library targets.
func (s *Server) HTTPClient() *http.Client {
	return &http.Client{Transport: &rewriteTransport{
		base: s.Client().Transport,
		host: strings.TrimPrefix(s.URL, "http://"),
	}}
}

// FailWith makes every following request answer with status until reset with 0.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request and false when none arrived.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Event returns the stored event as decoded JSON.
func (s *Server) Event(calendarID, eventID string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[calendarID][eventID]
	return ev, ok
}

// Seed stores an event with a fixed id, bypassing insert.
func (s *Server) Seed(calendarID, eventID string, event map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.events[calendarID] == nil {
		s.events[calendarID] = make(map[string]map[string]any)
	}
	event["id"] = eventID
	event["htmlLink"] = htmlLink(eventID)
	s.events[calendarID][eventID] = event
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	// /calendar/v3/calendars/{calendarId}/events[/{eventId}]
	idx := strings.Index(r.URL.Path, "/calendars/")
	if idx == -1 {
		writeError(w, http.StatusNotFound, "unsupported endpoint")
		return
	}
	parts := strings.Split(strings.Trim(r.URL.Path[idx+len("/calendars/"):], "/"), "/")
	if len(parts) < 2 || parts[1] != "events" {
		writeError(w, http.StatusNotFound, "unsupported endpoint")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := Request{Method: r.Method, CalendarID: parts[0], Header: r.Header.Clone(), Body: body}
	if len(parts) == 3 {
		req.EventID = parts[2]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.failWith != 0 {
		writeError(w, s.failWith, http.StatusText(s.failWith))
		return
	}

	switch {
	case req.EventID == "" && r.Method == http.MethodPost:
		s.insert(w, req)
	case req.EventID != "" && r.Method == http.MethodPatch:
		s.patch(w, req)
	case req.EventID != "" && r.Method == http.MethodDelete:
		s.delete(w, req)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) insert(w http.ResponseWriter, req Request) {
	var event map[string]any
	if err := json.Unmarshal(req.Body, &event); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	id := fmt.Sprintf("event%d", s.nextID)
	s.nextID++
	event["id"] = id
	event["htmlLink"] = htmlLink(id)
	event["status"] = "confirmed"

	if s.events[req.CalendarID] == nil {
		s.events[req.CalendarID] = make(map[string]map[string]any)
	}
	s.events[req.CalendarID][id] = event

	writeJSON(w, event)
}

func (s *Server) patch(w http.ResponseWriter, req Request) {
	event, ok := s.events[req.CalendarID][req.EventID]
	if !ok {
		s.writeMissing(w, req)
		return
	}

	var patch map[string]any
	if err := json.Unmarshal(req.Body, &patch); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	for k, v := range patch {
		if v == nil {
			delete(event, k)
			continue
		}
		event[k] = v
	}

	writeJSON(w, event)
}

func (s *Server) delete(w http.ResponseWriter, req Request) {
	if _, ok := s.events[req.CalendarID][req.EventID]; !ok {
		s.writeMissing(w, req)
		return
	}
	delete(s.events[req.CalendarID], req.EventID)
	s.deleted[req.CalendarID+"/"+req.EventID] = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeMissing(w http.ResponseWriter, req Request) {
	if s.deleted[req.CalendarID+"/"+req.EventID] {
		writeError(w, http.StatusGone, "Resource has been deleted")
		return
	}
	writeError(w, http.StatusNotFound, "Not Found")
}

func htmlLink(id string) string {
	return "https://www.google.com/calendar/event?eid=" + id
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers in the googleapi error format so the client library
// surfaces a *googleapi.Error.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"errors": []map[string]any{
				{"domain": "global", "reason": http.StatusText(code), "message": message},
			},
		},
	})
}

type rewriteTransport struct {
	base http.RoundTripper
	host string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.base.RoundTrip(req)
}
