// Package handlers implements HTTP handlers for the kapaipai price tracker API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck is an advisory dependency check. A failing check marks the
// service degraded but keeps it ready; only the store ping gates readiness.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// ReadinessResponse is the /readyz body. Checks maps each dependency to "ok"
// or its error text.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store  Pinger
	checks []ReadinessCheck
}

// NewHealthHandler creates a HealthHandler gated on the store ping.
func NewHealthHandler(s Pinger, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{store: s, checks: checks}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 503 when the database is unreachable. Otherwise it returns
// 200 with status "ready", or "degraded" when an advisory check fails.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()
	resp := ReadinessResponse{Status: "ready", Checks: map[string]string{"database": "ok"}}

	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Checks["database"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	for _, chk := range h.checks {
		if err := chk.Check(ctx); err != nil {
			resp.Status = "degraded"
			resp.Checks[chk.Name] = err.Error()
			continue
		}
		resp.Checks[chk.Name] = "ok"
	}
	return c.JSON(http.StatusOK, resp)
}

// RegisterHealthRoutes mounts the probes on e outside the versioned API.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
