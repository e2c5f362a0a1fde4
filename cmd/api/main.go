package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"glint-backoffice/internal/adapter/glintapi"
	httpadp "glint-backoffice/internal/adapter/http"
	mw "glint-backoffice/internal/adapter/middleware"
	mysqlrepo "glint-backoffice/internal/adapter/repository/mysql"
	sessionstore "glint-backoffice/internal/adapter/session"
	"glint-backoffice/internal/config"
	"glint-backoffice/internal/infrastructure/cache"
	"glint-backoffice/internal/infrastructure/db"
	"glint-backoffice/internal/infrastructure/logger"
	"glint-backoffice/internal/usecase/auth"
	ucReport "glint-backoffice/internal/usecase/report"
	ucUser "glint-backoffice/internal/usecase/user"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	pool := db.DefaultPool
	pool.MaxOpen = cfg.MySQLMaxOpenConns
	if pool.MaxIdle > pool.MaxOpen {
		pool.MaxIdle = pool.MaxOpen
	}
	gdb, err := db.OpenGorm(cfg.MySQLDSN(), pool, zl)
	if err != nil {
		zl.Fatal("mysql", zap.Error(err))
	}
	if err := mysqlrepo.Migrate(gdb); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		zl.Fatal("redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	api := glintapi.NewClient(cfg.GlintAPIBaseURL, cfg.GlintAPITimeout, zl)
	users := glintapi.NewUserGateway(api)
	reports := glintapi.NewReportGateway(api)
	sessions := sessionstore.NewRedisStore(rdb)
	decisions := mysqlrepo.NewDecisionRepository(gdb)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestID(), mw.RequestLogger(zl), middleware.Recover())

	httpadp.Register(e, httpadp.Routes{
		Health: httpadp.NewHandler(map[string]httpadp.Check{
			"mysql": func(ctx context.Context) error { return db.Ping(ctx, gdb) },
			"redis": func(ctx context.Context) error { return cache.Ping(ctx, rdb) },
		}),
		Auth:           httpadp.NewAuthHandler(auth.NewUsecase(users, sessions, cfg.SessionTTL(), zl)),
		Reports:        httpadp.NewReportHandler(ucReport.NewUsecase(reports, decisions, zl)),
		Users:          httpadp.NewUserHandler(ucUser.NewUsecase(users, zl)),
		Sessions:       sessions,
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL(),
		LoginRate:      rate.Limit(cfg.LoginRatePerSec),
		Logger:         zl,
	})

	addr := ":" + cfg.AppPort
	go func() {
		zl.Info("listening", zap.String("addr", addr), zap.String("glint_api", cfg.GlintAPIBaseURL))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
