package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sunnycharan27/loopyncapp/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// PresenceStore records which sockets a user has open so presence survives a
// single-instance restart and is visible to peers. Keys:
//
//	<prefix>:conn:<userId>      set of socket ids
//	<prefix>:presence:<userId>  {"status":...,"last_seen":...}
type PresenceStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewPresenceStore(client *redis.Client, prefix string) *PresenceStore {
	return &PresenceStore{client: client, prefix: prefix, ttl: 24 * time.Hour}
}

func (s *PresenceStore) connKey(userID string) string {
	return fmt.Sprintf("%s:conn:%s", s.prefix, userID)
}

func (s *PresenceStore) presenceKey(userID string) string {
	return fmt.Sprintf("%s:presence:%s", s.prefix, userID)
}

func (s *PresenceStore) SetOnline(ctx context.Context, userID, socketID string) error {
	if err := s.client.SAdd(ctx, s.connKey(userID), socketID).Err(); err != nil {
		return err
	}
	_ = s.client.Expire(ctx, s.connKey(userID), s.ttl).Err()
	b, _ := json.Marshal(map[string]any{"status": "online", "last_seen": time.Now().Unix()})
	return s.client.Set(ctx, s.presenceKey(userID), b, s.ttl).Err()
}

func (s *PresenceStore) SetOffline(ctx context.Context, userID, socketID string) error {
	if err := s.client.SRem(ctx, s.connKey(userID), socketID).Err(); err != nil {
		return err
	}
	n, _ := s.client.SCard(ctx, s.connKey(userID)).Result()
	if n == 0 {
		b, _ := json.Marshal(map[string]any{"status": "offline", "last_seen": time.Now().Unix()})
		return s.client.Set(ctx, s.presenceKey(userID), b, 0).Err()
	}
	return nil
}

func (s *PresenceStore) GetPresence(ctx context.Context, userID string) (map[string]any, error) {
	b, err := s.client.Get(ctx, s.presenceKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RateLimiter is a fixed-window counter per key.
type RateLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

// Allow increments the window counter for key and reports whether the caller
// is within the limit.
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("%s:rate:%s", r.prefix, key)
	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		_ = r.client.Expire(ctx, k, r.window).Err()
	}
	return n <= int64(r.limit), nil
}
