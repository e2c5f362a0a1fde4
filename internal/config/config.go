package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort string

	GlintAPIBaseURL string
	GlintAPITimeout time.Duration

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	MySQLMaxOpenConns int

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs    int
	SessionTTLSecs  int
	LoginRatePerSec float64

	LogLevel  string
	LogFormat string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")

	v.SetDefault("GLINT_API_BASE_URL", "http://localhost:8093/api/v1")
	v.SetDefault("GLINT_API_TIMEOUT", 15*time.Second)

	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "glint")
	v.SetDefault("MYSQL_USER", "glint")
	v.SetDefault("MYSQL_PASS", "glint")
	v.SetDefault("MYSQL_MAX_OPEN_CONNS", 10)

	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PASS", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("SESSION_TTL_SECONDS", 3600)
	v.SetDefault("LOGIN_RATE_PER_SEC", 5)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads configuration from the environment. Unparseable numbers fall
// back to zero and are caught by Validate.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		AppPort: v.GetString("APP_PORT"),

		GlintAPIBaseURL: v.GetString("GLINT_API_BASE_URL"),
		GlintAPITimeout: v.GetDuration("GLINT_API_TIMEOUT"),

		MySQLHost: v.GetString("MYSQL_HOST"),
		MySQLPort: v.GetString("MYSQL_PORT"),
		MySQLDB:   v.GetString("MYSQL_DB"),
		MySQLUser: v.GetString("MYSQL_USER"),
		MySQLPass: v.GetString("MYSQL_PASS"),

		MySQLMaxOpenConns: v.GetInt("MYSQL_MAX_OPEN_CONNS"),

		RedisAddr: v.GetString("REDIS_ADDR"),
		RedisPass: v.GetString("REDIS_PASS"),
		RedisDB:   v.GetInt("REDIS_DB"),

		IdempTTLSecs:    v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		SessionTTLSecs:  v.GetInt("SESSION_TTL_SECONDS"),
		LoginRatePerSec: v.GetFloat64("LOGIN_RATE_PER_SEC"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.MySQLMaxOpenConns <= 0 {
		return errors.New("MYSQL_MAX_OPEN_CONNS must be positive")
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.RedisAddr == "" {
		return errors.New("missing REDIS_ADDR")
	}
	u, err := url.Parse(c.GlintAPIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid GLINT_API_BASE_URL %q", c.GlintAPIBaseURL)
	}
	if c.GlintAPITimeout <= 0 {
		return errors.New("GLINT_API_TIMEOUT must be positive")
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	if c.SessionTTLSecs <= 0 {
		return errors.New("SESSION_TTL_SECONDS must be positive")
	}
	if c.LoginRatePerSec <= 0 {
		return errors.New("LOGIN_RATE_PER_SEC must be positive")
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
