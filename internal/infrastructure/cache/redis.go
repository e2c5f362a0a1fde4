package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// OpenRedis backs both the session store and the idempotency keys. The
// client is closed again if the first ping fails.
func OpenRedis(opt Options) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:         opt.Addr,
		Password:     opt.Password,
		DB:           opt.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := Ping(context.Background(), r); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Ping bounds a readiness check to a few seconds.
func Ping(ctx context.Context, r *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.Ping(ctx).Err()
}
