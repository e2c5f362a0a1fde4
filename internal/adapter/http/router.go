package http

import (
	"net/http"
	"time"

	"glint-backoffice/internal/adapter/middleware"
	"glint-backoffice/internal/domain/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Routes struct {
	Health  *Handler
	Auth    *AuthHandler
	Reports *ReportHandler
	Users   *UserHandler

	Sessions       session.Store
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	LoginRate      rate.Limit
	Logger         *zap.Logger
}

// loginLimiter throttles login attempts per client IP.
func loginLimiter(r rate.Limit) echo.MiddlewareFunc {
	burst := int(r)
	if burst < 1 {
		burst = 1
	}
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      r,
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) { return c.RealIP(), nil },
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many login attempts"})
		},
	})
}

// Register mounts every gateway route on e. Middleware is attached per route
// so unmatched paths still 404 instead of asking for a session.
func Register(e *echo.Echo, r Routes) {
	authed := middleware.SessionAuth(r.Sessions)
	idem := middleware.Idempotency(r.Redis, r.IdempotencyTTL, r.Logger)

	e.GET("/health", r.Health.Health)

	e.POST("/auth/login", r.Auth.Login, loginLimiter(r.LoginRate))
	e.POST("/auth/register", r.Auth.Register)
	e.POST("/auth/logout", r.Auth.Logout, authed)
	e.GET("/me", r.Auth.Me, authed)

	e.GET("/reports", r.Reports.List, authed)
	e.GET("/reports/overview", r.Reports.Overview, authed)
	e.POST("/reports", r.Reports.Create, authed, idem)
	e.POST("/reports/:report_id/decision", r.Reports.Decide, authed, idem)
	e.GET("/reports/:report_id/decisions", r.Reports.History, authed)

	e.GET("/admin/users", r.Users.List, authed)
	e.POST("/admin/users", r.Users.Create, authed, idem)
	e.PATCH("/admin/users/:user_id/role", r.Users.UpdateRole, authed, idem)
}
