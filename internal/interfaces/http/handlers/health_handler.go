package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker is anything that can report whether a backing service is
// reachable.
type HealthChecker func(ctx context.Context) error

// HealthHandler reports service liveness and dependency status.
type HealthHandler struct {
	checks map[string]HealthChecker
}

func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

type healthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// Health handles GET /api/health.  Degraded dependencies yield 503 with a
// per-component breakdown.
func (h *HealthHandler) Health(c *gin.Context) {
	status := healthStatus{Status: "ok", Components: make(map[string]string, len(h.checks))}
	code := http.StatusOK
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			status.Components[name] = err.Error()
			status.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		status.Components[name] = "ok"
	}
	c.JSON(code, status)
}
