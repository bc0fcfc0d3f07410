package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/argos/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// readinessTimeout bounds every dependency check
const readinessTimeout = 2 * time.Second

// HealthCheck is a named dependency probe
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// SystemHandler serves liveness and readiness probes
type SystemHandler struct {
	BaseHandler
	version   string
	startTime time.Time
	checks    []HealthCheck
}

// NewSystemHandler creates a new SystemHandler. Readiness reports every check given here.
func NewSystemHandler(version string, checks ...HealthCheck) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startTime: time.Now(),
		checks:    checks,
	}
}

// LivenessResponse represents the liveness probe response
type LivenessResponse struct {
	Status    string `json:"status" example:"ok"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// ReadinessResponse represents the readiness probe response
type ReadinessResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[LivenessResponse]
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, LivenessResponse{
		Status:    "ok",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Pings the database and, when enabled, Redis
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[ReadinessResponse]
// @Failure      503 {object} APIResponse[ReadinessResponse]
// @Router       /health/ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	resp := ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(h.checks))}
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			resp.Checks[check.Name] = "unavailable"
			resp.Status = "not_ready"
			continue
		}
		resp.Checks[check.Name] = "ok"
	}

	if resp.Status != "ready" {
		c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Data: resp})
		return
	}
	h.Success(c, resp)
}
