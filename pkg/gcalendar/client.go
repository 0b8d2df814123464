package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service. Typed calls go through
// service; raw patches go through httpClient, the same authorized client.
type Client struct {
	service    *calendar.Service
	httpClient *http.Client
	timeout    time.Duration
}

// NewClientFromRefreshToken creates a Calendar client that mints access tokens
// from a long-lived refresh token. Access tokens are cached and renewed by the
// oauth2 token source, so one Client is safe to share across requests.
func NewClientFromRefreshToken(ctx context.Context, cfg RefreshTokenConfig) (*Client, error) {
	if cfg.RefreshToken == "" {
		return nil, ErrMissingRefreshToken
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	if cfg.TokenURL != "" {
		oauthConfig.Endpoint.TokenURL = cfg.TokenURL
	}
	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	httpClient := oauth2.NewClient(ctx, tokenSource)

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Client{service: svc, httpClient: httpClient, timeout: cfg.Timeout}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, httpClient: httpClient}, nil
}

// InsertEvent creates event in calendarID.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, event *calendar.Event) (*Event, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, newUpstreamError("insert event", err)
	}

	return &Event{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

// PatchEvent applies patch to an existing event. The bytes of patch are the
// request body, so nested zero values, nulls and fields the typed client does
// not model all reach the API.
func (c *Client) PatchEvent(ctx context.Context, calendarID, eventID string, patch json.RawMessage) (*Event, error) {
	body, err := normalizePatch(patch)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	updated, err := c.sendPatch(ctx, calendarID, eventID, body)
	if err != nil {
		return nil, newUpstreamError("patch event", err)
	}

	return &Event{ID: updated.Id, HTMLLink: updated.HtmlLink}, nil
}

// DeleteEvent removes an event. Deleting an unknown or already deleted id fails.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return newUpstreamError("delete event", err)
	}
	return nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}
