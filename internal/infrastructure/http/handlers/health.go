package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe.
// The server has no stateful dependencies; readiness only confirms the
// upstream credential is configured so tool calls can be attempted.
type ReadinessHandler struct {
	tokenConfigured bool
}

func NewReadinessHandler(tokenConfigured bool) *ReadinessHandler {
	return &ReadinessHandler{tokenConfigured: tokenConfigured}
}

type readinessResponse struct {
	Status     string `json:"status"`
	Credential string `json:"credential"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	if !h.tokenConfigured {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status:     "degraded",
			Credential: "missing",
		})
	}
	return c.JSON(http.StatusOK, readinessResponse{
		Status:     "ok",
		Credential: "configured",
	})
}
