package middleware

import (
	"errors"
	"net/http"
	"strings"

	"glint-backoffice/internal/domain/session"

	"github.com/labstack/echo/v4"
)

const sessionKey = "glint.session"

// SessionAuth resolves "Authorization: Bearer <session id>" against store
// and puts the session on the echo context.
func SessionAuth(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return reject(c, http.StatusUnauthorized, "missing bearer session")
			}
			s, err := store.Get(c.Request().Context(), id)
			switch {
			case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
				return reject(c, http.StatusUnauthorized, "session expired or unknown")
			case err != nil:
				return reject(c, http.StatusServiceUnavailable, "session store unavailable")
			}
			SetSession(c, s)
			return next(c)
		}
	}
}

func bearer(h string) (string, bool) {
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	id := strings.TrimSpace(h[len(prefix):])
	return id, id != ""
}

func SetSession(c echo.Context, s *session.Session) { c.Set(sessionKey, s) }

// CurrentSession returns the session SessionAuth stored, or nil.
func CurrentSession(c echo.Context) *session.Session {
	s, _ := c.Get(sessionKey).(*session.Session)
	return s
}
