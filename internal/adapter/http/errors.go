package http

import (
	"errors"
	"net/http"

	"glint-backoffice/internal/adapter/middleware"
	"glint-backoffice/internal/domain/report"
	"glint-backoffice/internal/domain/session"
	"glint-backoffice/internal/domain/workflow"

	"github.com/labstack/echo/v4"
)

// remoteStatus is implemented by remote API errors that carry the upstream
// HTTP status.
type remoteStatus interface{ StatusCode() int }

// Remote statuses the caller can act on. Anything else, a remote 403
// included, becomes 502 so it cannot pass for a local refusal.
var passThrough = map[int]bool{
	http.StatusBadRequest:   true,
	http.StatusUnauthorized: true,
	http.StatusNotFound:     true,
}

// statusFor maps a use case error to the HTTP status the gateway answers with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, workflow.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, workflow.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, report.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		return http.StatusUnauthorized
	case errors.Is(err, workflow.ErrRemote):
		var rs remoteStatus
		if errors.As(err, &rs) && passThrough[rs.StatusCode()] {
			return rs.StatusCode()
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	middleware.RecordError(c, err)
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

// bindAndValidate writes the 400/422 response itself; on !ok the caller
// returns err as is.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
