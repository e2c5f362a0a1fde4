package middleware

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Allowed client/server clock skew for X-Request-At.
const maxClockSkew = 10 * time.Minute

var nowUTC = func() time.Time { return time.Now().UTC() }

// Lowercase only: a uuid v1-5 or 32 hex characters.
var reqIDPattern = regexp.MustCompile(`^(?:[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}|[a-f0-9]{32})$`)

type requestMeta struct {
	id string
	at time.Time
}

func readRequestMeta(h http.Header, now time.Time) (requestMeta, error) {
	id := strings.TrimSpace(h.Get(HeaderRequestID))
	if id == "" {
		return requestMeta{}, errors.New("missing " + HeaderRequestID)
	}
	if !validReqID(id) {
		return requestMeta{}, errors.New("invalid " + HeaderRequestID + " format")
	}
	at, err := parseRequestAt(h.Get(HeaderRequestAt))
	if err != nil {
		return requestMeta{}, err
	}
	if at.Before(now.Add(-maxClockSkew)) || at.After(now.Add(maxClockSkew)) {
		return requestMeta{}, errors.New(HeaderRequestAt + " too skewed")
	}
	return requestMeta{id: id, at: at}, nil
}

func validReqID(id string) bool { return reqIDPattern.MatchString(id) }

// parseRequestAt accepts epoch seconds, epoch milliseconds, or RFC3339 with
// a zone. Naive local timestamps are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing " + HeaderRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.New(HeaderRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
	}
	return t.UTC(), nil
}
