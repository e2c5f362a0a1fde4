package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domain "glint-backoffice/internal/domain/session"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "glint:sess:"

var _ domain.Store = (*RedisStore)(nil)

// RedisStore keeps sessions as JSON blobs that expire together with the
// session itself.
type RedisStore struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, now: func() time.Time { return time.Now().UTC() }}
}

func key(id string) string { return keyPrefix + id }

func (s *RedisStore) Save(ctx context.Context, sess *domain.Session) error {
	if sess.ID == "" {
		return errors.New("session id is empty")
	}
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return domain.ErrExpired
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sess.ID), payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	v, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		return nil, domain.ErrExpired
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
