package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"calendar-webhook/internal/model"
	"calendar-webhook/pkg/log"
)

// Config holds all service configuration. It is loaded once at startup and
// passed by value from then on.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar webhook specifics
	Webhook        WebhookConfig
	Google         GoogleOAuthConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
	MaxBodyBytes    int64
}

// GoogleOAuthConfig is the OAuth client plus the refresh token issued by scripts/gcal-auth.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

type GoogleCalendarConfig struct {
	CalendarID     string
	Endpoint       string
	RequestTimeout time.Duration
}

// BootstrapConfig is what scripts/gcal-auth needs.
type BootstrapConfig struct {
	ClientID     string
	ClientSecret string
}

var ErrMissingRequired = errors.New("missing required configuration")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/calendar-webhook/.
// A .env file in the working directory is applied to the environment first.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if v.IsSet("port") {
		cfg.HTTPServer.Port = v.GetInt("port")
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Webhook
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.MaxBodyBytes = v.GetInt64("webhook.max_body_bytes")
	cfg.Webhook.AllowedIPs = splitCSV(v.GetString("webhook.allowed_ips"))

	// Google OAuth client + refresh token
	cfg.Google.ClientID = v.GetString("google.client_id")
	cfg.Google.ClientSecret = v.GetString("google.client_secret")
	cfg.Google.RefreshToken = v.GetString("google.refresh_token")

	// Calendar
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if calendarID := v.GetString("calendar_id"); calendarID != "" {
		cfg.GoogleCalendar.CalendarID = calendarID
	}
	cfg.GoogleCalendar.Endpoint = v.GetString("google_calendar.endpoint")
	cfg.GoogleCalendar.RequestTimeout = v.GetDuration("google_calendar.request_timeout")

	if cfg.Environment.Name == string(model.EnvironmentProduction) {
		cfg.applyProduction()
	}

	return cfg, nil
}

// applyProduction pins the settings production must not inherit from a
// developer's config: gin debug output and colored console logs.
func (c *Config) applyProduction() {
	c.HTTPServer.Mode = "release"
	c.Logger.Mode = log.ModeProduction
	c.Logger.Encoding = log.EncodingJSON
	c.Logger.ColorEnabled = false
}

// Validate reports every required value that is missing.
func (c *Config) Validate() error {
	var missing []string
	if c.Webhook.Secret == "" {
		missing = append(missing, "WEBHOOK_SECRET")
	}
	if c.GoogleCalendar.CalendarID == "" {
		missing = append(missing, "CALENDAR_ID")
	}
	if c.Google.ClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if c.Google.ClientSecret == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if c.Google.RefreshToken == "" {
		missing = append(missing, "GOOGLE_REFRESH_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.HTTPServer.Port)
	}
	if c.Webhook.RateLimitPerMin < 0 {
		return fmt.Errorf("webhook.rate_limit_per_min must not be negative")
	}
	return nil
}

// LoadBootstrap loads the OAuth client used by scripts/gcal-auth.
// Both values are required.
func LoadBootstrap() (*BootstrapConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := &BootstrapConfig{
		ClientID:     v.GetString("google.client_id"),
		ClientSecret: v.GetString("google.client_secret"),
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET first", ErrMissingRequired)
	}
	return cfg, nil
}

func newViper() (*viper.Viper, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/calendar-webhook/")

	// google.client_id <-> GOOGLE_CLIENT_ID, webhook.secret <-> WEBHOOK_SECRET, ...
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("webhook.rate_limit_per_min", 0)
	v.SetDefault("webhook.max_body_bytes", 1<<20)
	v.SetDefault("google_calendar.request_timeout", "0s")
}

// splitCSV splits a comma separated list, dropping blanks.
// Viper does not parse arrays out of env values.
func splitCSV(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
