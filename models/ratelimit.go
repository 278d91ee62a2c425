package models

import "time"

const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreCache  = "cache"

	StatsStoreNone   = ""
	StatsStoreMemory = "memory"
	StatsStoreRedis  = "redis"
)

type RateLimitConfig struct {
	MaxRequests        int                  `yaml:"max_requests" json:"max_requests,omitempty"`
	WindowDuration     time.Duration        `yaml:"window_duration" json:"window_duration,omitempty"`
	SweepInterval      time.Duration        `yaml:"sweep_interval" json:"sweep_interval,omitempty"`
	Store              string               `yaml:"store" json:"store,omitempty"`
	TrustXForwardedFor bool                 `yaml:"trust_x_forwarded_for" json:"trust_x_forwarded_for"`
	Stats              RateLimitStatsConfig `yaml:"stats" json:"stats"`
}

// RateLimitStatsConfig selects where admission decisions are counted in addition
// to the Prometheus counters. An empty Store disables the extra sink.
type RateLimitStatsConfig struct {
	Store     string        `yaml:"store" json:"store,omitempty"`
	RedisAddr string        `yaml:"redis_addr" json:"redis_addr,omitempty"`
	Prefix    string        `yaml:"prefix" json:"prefix,omitempty"`
	TTL       time.Duration `yaml:"ttl" json:"ttl,omitempty"`
	TrackKeys bool          `yaml:"track_keys" json:"track_keys"`

	// MaxTrackedKeys caps the per-key table of the memory store.
	MaxTrackedKeys int `yaml:"max_tracked_keys" json:"max_tracked_keys,omitempty"`

	// Redis writes leave the request path through a bounded buffer.
	BufferSize    int           `yaml:"buffer_size" json:"buffer_size,omitempty"`
	RecordTimeout time.Duration `yaml:"record_timeout" json:"record_timeout,omitempty"`
}
