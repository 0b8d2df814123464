package bootstrap

import (
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultListen      = "localhost:8787"
	DefaultRedirectURL = "http://localhost:8787/oauth2callback"
	CallbackPath       = "/oauth2callback"
	CalendarScope      = "https://www.googleapis.com/auth/calendar.events"
)

// Browser messages.
const (
	msgNoCode         = "No code found."
	msgOK             = "OK. You can close this tab."
	msgStateMismatch  = "State mismatch. Start again from the printed URL."
	msgExchangeFailed = "Token exchange failed. Check the terminal."
	msgAlreadyDone    = "Already authorized. You can close this tab."
)

// Config describes one authorization run.
type Config struct {
	ClientID     string
	ClientSecret string
	// RedirectURL must be registered on the OAuth client. Defaults to DefaultRedirectURL.
	RedirectURL string
	// Listen is the local address for the callback listener. Defaults to DefaultListen.
	Listen string
	// Endpoint overrides the Google OAuth endpoint. Zero means google.Endpoint.
	Endpoint oauth2.Endpoint
	// Timeout bounds the wait for the browser callback. 0 waits forever.
	Timeout time.Duration
}
