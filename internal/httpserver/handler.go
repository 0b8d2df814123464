package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-webhook/internal/middleware"
	"calendar-webhook/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.webhook)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.Logging())

	ctx := context.Background()
	srv.l.Infof(ctx, "Environment: %s", srv.environment)
	if len(srv.webhook.AllowedIPs) > 0 {
		srv.l.Infof(ctx, "IP allowlist enabled: %v", srv.webhook.AllowedIPs)
	}
	if srv.webhook.RateLimitPerMin > 0 {
		srv.l.Infof(ctx, "Rate limit enabled: %d req/min per client", srv.webhook.RateLimitPerMin)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// API docs stay off the public surface in production.
	if srv.isProduction() {
		srv.l.Info(context.Background(), "Swagger UI disabled in production")
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) isProduction() bool {
	return srv.environment == string(model.EnvironmentProduction)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupCalendarDomain(ctx, srv.gin, mw); err != nil {
		return err
	}

	return nil
}
