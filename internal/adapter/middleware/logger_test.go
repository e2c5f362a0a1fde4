package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := echo.New()
	e.Use(withUser("u-1"), RequestLogger(zap.New(core)))
	e.GET("/reports/:report_id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/handled", func(c echo.Context) error {
		RecordError(c, errors.New("journal down"))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	})
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") })

	for _, path := range []string{"/reports/r1", "/boom", "/handled"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(echo.HeaderXRequestID, "req-1")
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("want 3 log lines, got %d", len(entries))
	}
	ok := entries[0].ContextMap()
	if ok["route"] != "/reports/:report_id" || ok["status"] != int64(200) || ok["user_id"] != "u-1" || ok["request_id"] != "req-1" {
		t.Fatalf("unexpected fields: %v", ok)
	}
	if entries[1].Level != zapcore.ErrorLevel || entries[1].ContextMap()["status"] != int64(502) {
		t.Fatalf("server error should log at error level: %+v", entries[1])
	}
	if got := entries[2].ContextMap()["error"]; got != "journal down" {
		t.Fatalf("handled error should be logged, got %v", got)
	}
}
