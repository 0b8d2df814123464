// gcal-auth runs the one-time Google OAuth consent flow and prints the
// refresh token to put in GOOGLE_REFRESH_TOKEN.
//
// Usage:
//
//	GOOGLE_CLIENT_ID=... GOOGLE_CLIENT_SECRET=... go run ./scripts/gcal-auth
//
// Open the printed URL, log in, and copy the refresh token from the terminal.
// The OAuth client must allow http://localhost:8787/oauth2callback as a
// redirect URI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"calendar-webhook/config"
	"calendar-webhook/internal/bootstrap"
	"calendar-webhook/pkg/log"
)

var (
	listenAddr  string
	redirectURL string
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "gcal-auth",
	Short: "Obtain a Google Calendar refresh token for the webhook service",
	Long: `Prints a Google consent URL, waits for the browser redirect on the local
callback listener, exchanges the code and prints the refresh token.

Examples:
  gcal-auth                         # listen on localhost:8787 until authorized
  gcal-auth --timeout 5m            # give up after five minutes`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&listenAddr, "listen", bootstrap.DefaultListen, "address of the local callback listener")
	rootCmd.Flags().StringVar(&redirectURL, "redirect-url", bootstrap.DefaultRedirectURL, "redirect URI registered on the OAuth client")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "how long to wait for the callback (0 waits forever)")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadBootstrap()
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})

	b, err := bootstrap.New(logger, bootstrap.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  redirectURL,
		Listen:       listenAddr,
		Timeout:      timeout,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser:\n\n%s\n\n", b.AuthURL())

	tok, err := b.Run(ctx)
	if err != nil {
		return err
	}

	return bootstrap.PrintToken(cmd.OutOrStdout(), tok)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
