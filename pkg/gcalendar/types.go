package gcalendar

import "time"

// RefreshTokenConfig holds what is needed to call the API on behalf of a user
// who already granted offline access.
type RefreshTokenConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string

	// TokenURL overrides the Google OAuth token endpoint.
	TokenURL string
	// Endpoint overrides the API base URL (e.g. "https://proxy.local/calendar/v3/").
	Endpoint string
	// Timeout bounds each API call. Zero means no timeout.
	Timeout time.Duration
}

// Event is the part of a Google Calendar event the service reports back.
type Event struct {
	ID       string
	HTMLLink string
}
