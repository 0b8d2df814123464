// Package bootstrap runs the one-time OAuth consent flow that yields the
// refresh token the webhook service authenticates with.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"calendar-webhook/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Bootstrapper owns the OAuth client and the local callback listener.
type Bootstrapper struct {
	l       log.Logger
	oauth   *oauth2.Config
	listen  string
	timeout time.Duration
	state   string

	mu   sync.Mutex
	done bool
}

type result struct {
	tok *oauth2.Token
	err error
}

// New validates cfg and fills in the defaults.
func New(l log.Logger, cfg Config) (*Bootstrapper, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingClient
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = DefaultRedirectURL
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	return &Bootstrapper{
		l: l,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{CalendarScope},
		},
		listen:  cfg.Listen,
		timeout: cfg.Timeout,
		state:   uuid.NewString(),
	}, nil
}

// AuthURL is the consent URL to open in a browser. It forces the consent
// screen so Google issues a refresh token every time.
func (b *Bootstrapper) AuthURL() string {
	return b.oauth.AuthCodeURL(b.state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Run listens on the configured address until one authorization code has
// been exchanged, the timeout expires or ctx is cancelled.
func (b *Bootstrapper) Run(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", b.listen)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.Run listen %s: %w", b.listen, err)
	}
	return b.Serve(ctx, ln)
}

// Serve is Run on an existing listener. The listener is closed on return.
func (b *Bootstrapper) Serve(ctx context.Context, ln net.Listener) (*oauth2.Token, error) {
	resultCh := make(chan result, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(CallbackPath, b.callback(ctx, resultCh))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	b.l.Infof(ctx, "Listening on http://%s ...", ln.Addr())

	var timeout <-chan time.Time
	if b.timeout > 0 {
		timer := time.NewTimer(b.timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	var res result
	select {
	case res = <-resultCh:
	case err := <-serveErr:
		res.err = fmt.Errorf("bootstrap.Serve: %w", err)
	case <-timeout:
		res.err = ErrTimeout
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		b.l.Warnf(ctx, "bootstrap.Serve shutdown: %v", err)
	}

	return res.tok, res.err
}

// callback handles the browser redirect. Requests without a usable code are
// answered and ignored so the user can retry from the same URL.
func (b *Bootstrapper) callback(ctx context.Context, resultCh chan<- result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if reason := q.Get("error"); reason != "" {
			b.l.Warnf(ctx, "authorization refused: %s", reason)
			http.Error(w, "Authorization failed: "+reason, http.StatusBadRequest)
			return
		}

		code := q.Get("code")
		if code == "" {
			io.WriteString(w, msgNoCode)
			return
		}

		if q.Get("state") != b.state {
			b.l.Warnf(ctx, "callback with unexpected state %q", q.Get("state"))
			http.Error(w, msgStateMismatch, http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		if b.done {
			io.WriteString(w, msgAlreadyDone)
			return
		}
		b.done = true

		tok, err := b.oauth.Exchange(ctx, code)
		if err != nil {
			http.Error(w, msgExchangeFailed, http.StatusInternalServerError)
			resultCh <- result{err: fmt.Errorf("bootstrap exchange: %w", err)}
			return
		}

		io.WriteString(w, msgOK)
		resultCh <- result{tok: tok}
	}
}

// PrintToken writes the refresh token for the operator to copy into
// GOOGLE_REFRESH_TOKEN.
func PrintToken(w io.Writer, tok *oauth2.Token) error {
	if tok == nil || tok.RefreshToken == "" {
		return ErrMissingRefreshToken
	}
	_, err := fmt.Fprintf(w, "\nCOPY THIS refresh_token (keep it secret):\n\n%s\n\n(Do NOT paste it into chat.)\n\n", tok.RefreshToken)
	return err
}
