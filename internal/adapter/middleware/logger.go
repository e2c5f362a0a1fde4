package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const errorKey = "glint.error"

// RecordError attaches an error a handler already answered for, so the
// request log line still carries the cause.
func RecordError(c echo.Context, err error) { c.Set(errorKey, err) }

// RequestLogger logs one line per request. Server errors log at error level.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.RequestID != "" {
				fields = append(fields, zap.String("request_id", v.RequestID))
			}
			if s := CurrentSession(c); s != nil {
				fields = append(fields, zap.String("user_id", s.UserID))
			}
			err := v.Error
			if err == nil {
				err, _ = c.Get(errorKey).(error)
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			if v.Status >= 500 {
				log.Error("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
