package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-webhook/internal/calendar/repository/gcal"
	"calendar-webhook/internal/middleware"
	"calendar-webhook/internal/model"
	"calendar-webhook/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Calendar domain
	calendarClient gcal.Client
	calendarID     string
	webhook        middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Calendar domain
	CalendarClient gcal.Client
	CalendarID     string
	Webhook        middleware.Config
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Environment == string(model.EnvironmentProduction) {
		cfg.Mode = gin.ReleaseMode
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		calendarClient: cfg.CalendarClient,
		calendarID:     cfg.CalendarID,
		webhook:        cfg.Webhook,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarClient == nil {
		return errors.New("calendar client is required")
	}
	if srv.calendarID == "" {
		return errors.New("calendar id is required")
	}
	return nil
}
