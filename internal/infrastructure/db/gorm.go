package db

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Pool sizes the underlying *sql.DB. The journal sees one insert per
// decision, so the defaults are small.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

var DefaultPool = Pool{
	MaxOpen:     10,
	MaxIdle:     5,
	MaxLifetime: 30 * time.Minute,
	MaxIdleTime: 10 * time.Minute,
}

// OpenGorm connects to MySQL using dsn.
func OpenGorm(dsn string, pool Pool, log *zap.Logger) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), pool, log)
}

// OpenGormWithDialector applies pool settings and pings before returning.
func OpenGormWithDialector(dial gorm.Dialector, pool Pool, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(dial, &gorm.Config{Logger: NewGormLogger(log, 200*time.Millisecond)})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetConnMaxLifetime(pool.MaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.MaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Info("gorm: connected", zap.String("dialect", dial.Name()), zap.Int("max_open", pool.MaxOpen))
	return db, nil
}

// Ping is the readiness probe for the journal database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
