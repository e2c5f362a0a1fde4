package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	replayKeyPrefix = "idemp:glint:"

	// Lifetime of the pending marker if the handler never finishes.
	pendingTTL = 60 * time.Second
)

type replayRecord struct {
	Pending     bool      `json:"pending"`
	Status      int       `json:"status,omitempty"`
	Body        []byte    `json:"body,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	RequestID   string    `json:"request_id"`
	RequestAt   time.Time `json:"request_at"`
	StoredAt    time.Time `json:"stored_at"`
}

type replayStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func newReplayStore(rdb *redis.Client, ttl time.Duration) *replayStore {
	return &replayStore{rdb: rdb, ttl: ttl}
}

func replayKey(method, path, userID, requestID string) string {
	return replayKeyPrefix + strings.Join([]string{strings.ToLower(method), path, userID, requestID}, ":")
}

func fingerprint(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// acquire writes the pending marker unless a record already exists.
func (s *replayStore) acquire(ctx context.Context, key string, rec replayRecord) (bool, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, b, pendingTTL).Result()
}

func (s *replayStore) lookup(ctx context.Context, key string) (replayRecord, error) {
	var rec replayRecord
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return rec, err
	}
	err = json.Unmarshal(b, &rec)
	return rec, err
}

func (s *replayStore) commit(ctx context.Context, key string, rec replayRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, s.ttl).Err()
}

func (s *replayStore) release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
