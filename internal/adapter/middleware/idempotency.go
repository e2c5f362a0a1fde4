package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderRequestAt = "X-Request-At"

	storeTimeout = 2 * time.Second
)

// bodyCapture tees the handler's response so it can be stored for replay.
type bodyCapture struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (b *bodyCapture) WriteHeader(code int) {
	b.status = code
	b.ResponseWriter.WriteHeader(code)
}

func (b *bodyCapture) Write(p []byte) (int, error) {
	b.body.Write(p)
	return b.ResponseWriter.Write(p)
}

// Idempotency replays the recorded response of a mutating request retried
// with the same X-Request-Id. Records are scoped to the session user and the
// request path, so it must run after SessionAuth. Server errors are never recorded.
func Idempotency(rdb *redis.Client, ttl time.Duration, log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	store := newReplayStore(rdb, ttl)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			s := CurrentSession(c)
			if s == nil || s.UserID == "" {
				return reject(c, http.StatusUnauthorized, "missing session")
			}
			meta, err := readRequestMeta(req.Header, nowUTC())
			if err != nil {
				return reject(c, http.StatusBadRequest, err.Error())
			}

			var body []byte
			if req.Body != nil {
				if body, err = io.ReadAll(req.Body); err != nil {
					return reject(c, http.StatusBadRequest, "unreadable request body")
				}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			// the concrete path, so each report id gets its own record
			key := replayKey(req.Method, req.URL.Path, s.UserID, meta.id)
			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			rec := replayRecord{
				Pending:     true,
				Fingerprint: fingerprint(body),
				RequestID:   meta.id,
				RequestAt:   meta.at,
				StoredAt:    nowUTC(),
			}
			acquired, err := store.acquire(ctx, key, rec)
			if err != nil {
				log.Warn("idempotency: acquire", zap.String("key", key), zap.Error(err))
				return reject(c, http.StatusServiceUnavailable, "idempotency store unavailable")
			}
			if !acquired {
				prior, err := store.lookup(ctx, key)
				if err != nil {
					log.Warn("idempotency: lookup", zap.String("key", key), zap.Error(err))
				}
				return replay(c, prior, rec.Fingerprint)
			}

			capture := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = capture
			if err := next(c); err != nil {
				c.Error(err)
			}

			bg := context.WithoutCancel(ctx)
			if capture.status >= http.StatusInternalServerError {
				if err := store.release(bg, key); err != nil {
					log.Warn("idempotency: release", zap.String("key", key), zap.Error(err))
				}
				return nil
			}

			rec.Pending = false
			rec.Status = capture.status
			rec.Body = capture.body.Bytes()
			rec.StoredAt = nowUTC()
			if err := store.commit(bg, key, rec); err != nil {
				log.Warn("idempotency: commit", zap.String("key", key), zap.Error(err))
			}
			return nil
		}
	}
}

func replay(c echo.Context, prior replayRecord, fp string) error {
	switch {
	case prior.Fingerprint != "" && prior.Fingerprint != fp:
		return reject(c, http.StatusConflict, HeaderRequestID+" reused with different body")
	case prior.Pending || prior.Status == 0:
		return reject(c, http.StatusConflict, "request is already in progress")
	case len(prior.Body) == 0:
		return c.NoContent(prior.Status)
	}
	return c.Blob(prior.Status, echo.MIMEApplicationJSON, prior.Body)
}

func reject(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}
