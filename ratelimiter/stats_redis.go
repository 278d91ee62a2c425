package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultStatsPrefix = "contactapi:ratelimit:stats"
	DefaultStatsTTL    = 24 * time.Hour
)

// RedisStatsStore keeps cumulative totals plus per-minute and per-route counters
// in Redis hashes. Per-minute and per-key hashes expire after ttl.
type RedisStatsStore struct {
	rdb       redis.Cmdable
	prefix    string
	ttl       time.Duration
	trackKeys bool
}

var _ StatsStore = &RedisStatsStore{}

func NewRedisStatsStore(rdb redis.Cmdable, prefix string, ttl time.Duration, trackKeys bool) *RedisStatsStore {
	prefix = strings.Trim(prefix, ":")
	if prefix == "" {
		prefix = DefaultStatsPrefix
	}
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &RedisStatsStore{
		rdb:       rdb,
		prefix:    prefix,
		ttl:       ttl,
		trackKeys: trackKeys,
	}
}

func (s *RedisStatsStore) TotalKey() string {
	return s.prefix + ":total"
}

func (s *RedisStatsStore) MinuteKey(at time.Time) string {
	return fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
}

func (s *RedisStatsStore) RouteKey() string {
	return s.prefix + ":route"
}

func (s *RedisStatsStore) ClientKey(key string) string {
	return s.prefix + ":key:" + key
}

func (s *RedisStatsStore) Record(ctx context.Context, ev StatsEvent) error {
	field := "denied"
	if ev.Allowed {
		field = "allowed"
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.TotalKey(), field, 1)

	if !ev.At.IsZero() {
		minuteKey := s.MinuteKey(ev.At)
		pipe.HIncrBy(ctx, minuteKey, field, 1)
		pipe.Expire(ctx, minuteKey, s.ttl)
	}

	route := strings.TrimSpace(ev.Method + " " + ev.Path)
	if route != "" {
		pipe.HIncrBy(ctx, s.RouteKey(), route+":"+field, 1)
	}

	if s.trackKeys && ev.Key != "" {
		clientKey := s.ClientKey(ev.Key)
		pipe.HIncrBy(ctx, clientKey, field, 1)
		pipe.Expire(ctx, clientKey, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record admission stats: %w", err)
	}
	return nil
}
