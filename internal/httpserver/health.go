package httpserver

import (
	"github.com/gin-gonic/gin"

	"calendar-webhook/pkg/response"
)

// Health response constants.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-webhook"
)

type statusResp struct {
	response.Resp
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newStatusResp(status string) statusResp {
	return statusResp{
		Resp:    response.NewOKResp(),
		Status:  status,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Unauthenticated liveness check, always {"ok":true}
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, nil)
}

// readyCheck handles readiness check; the server is ready once it is serving.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, newStatusResp("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} statusResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newStatusResp("alive"))
}
