package ratelimiter

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

const (
	DefaultMaxRequests    = 5
	DefaultWindowDuration = 15 * time.Minute
	DefaultSweepInterval  = time.Hour
)

type Limiter interface {
	ExceedsLimit(string) bool
	Admit(string) Decision
}

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Count     int
	ResetTime time.Time
}

// RateLimiter admits at most maxRequests per key in each fixed window. A key that
// uses its whole budget at the end of one window may spend it again right after
// the reset, so up to 2*maxRequests can pass around a window boundary.
type RateLimiter struct {
	store       Store
	maxRequests int
	window      time.Duration
	clock       clock.Clock
	logger      lager.Logger
	lock        sync.Mutex
}

var _ Limiter = &RateLimiter{}

func NewRateLimiter(store Store, maxRequests int, window time.Duration, clock clock.Clock, logger lager.Logger) *RateLimiter {
	return &RateLimiter{
		store:       store,
		maxRequests: maxRequests,
		window:      window,
		clock:       clock,
		logger:      logger,
	}
}

func (r *RateLimiter) Admit(key string) Decision {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := r.clock.Now()
	record, ok := r.store.Get(key)
	if !ok || record.Expired(now) {
		record = Record{Count: 1, ResetTime: now.Add(r.window)}
		r.store.Set(key, record)
		return Decision{Allowed: true, Count: record.Count, ResetTime: record.ResetTime}
	}

	if record.Count >= r.maxRequests {
		r.logger.Debug("limit-reached", lager.Data{"key": key, "count": record.Count, "reset_time": record.ResetTime})
		return Decision{Allowed: false, Count: record.Count, ResetTime: record.ResetTime}
	}

	record.Count++
	r.store.Set(key, record)
	return Decision{Allowed: true, Count: record.Count, ResetTime: record.ResetTime}
}

func (r *RateLimiter) ExceedsLimit(key string) bool {
	return !r.Admit(key).Allowed
}
