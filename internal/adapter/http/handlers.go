package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// Check probes one dependency for /health.
type Check func(ctx context.Context) error

type Handler struct{ checks map[string]Check }

func NewHandler(checks map[string]Check) *Handler { return &Handler{checks: checks} }

// Health answers 200 when every check passes, 503 with the failing ones
// otherwise. The remote GLINT API is not probed.
func (h *Handler) Health(c echo.Context) error {
	status, code := "ok", http.StatusOK
	body := map[string]any{}

	if len(h.checks) > 0 {
		names := make([]string, 0, len(h.checks))
		for name := range h.checks {
			names = append(names, name)
		}
		sort.Strings(names)

		results := make(map[string]string, len(names))
		for _, name := range names {
			if err := h.checks[name](c.Request().Context()); err != nil {
				results[name] = err.Error()
				status, code = "degraded", http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}
		body["checks"] = results
	}

	body["status"] = status
	body["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	return c.JSON(code, body)
}
