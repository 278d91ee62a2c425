package ratelimiter

import (
	"math"
	"net/http"
	"strconv"

	"github.com/contactform/contactapi/helpers/handlers"
	"github.com/contactform/contactapi/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type RateLimiterMiddleware struct {
	KeyFunc     KeyFunc
	RateLimiter Limiter
	stats       []StatsStore
	clock       clock.Clock
	logger      lager.Logger
}

func NewRateLimiterMiddleware(keyFunc KeyFunc, rateLimiter Limiter, clock clock.Clock, logger lager.Logger, stats ...StatsStore) *RateLimiterMiddleware {
	return &RateLimiterMiddleware{
		KeyFunc:     keyFunc,
		RateLimiter: rateLimiter,
		stats:       stats,
		clock:       clock,
		logger:      logger,
	}
}

func (mw *RateLimiterMiddleware) CheckRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := mw.KeyFunc(r)
		if key == "" {
			mw.logger.Error("missing-rate-limit-key", nil, lager.Data{"url": r.URL.String()})
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Missing rate limit key",
			})
			return
		}

		decision := mw.RateLimiter.Admit(key)
		mw.record(r, key, decision)

		if !decision.Allowed {
			mw.logger.Info("error-exceed-rate-limit", lager.Data{"key": key, "count": decision.Count, "reset_time": decision.ResetTime})
			w.Header().Set("Retry-After", strconv.Itoa(mw.retryAfterSeconds(decision)))
			rateLimitErr := models.NewRateLimitExceededError()
			handlers.WriteJSONResponse(w, rateLimitErr.StatusCode, models.ErrorResponse{
				Success: false,
				Message: rateLimitErr.Message,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (mw *RateLimiterMiddleware) record(r *http.Request, key string, decision Decision) {
	ev := StatsEvent{
		Key:     key,
		Allowed: decision.Allowed,
		Method:  r.Method,
		Path:    r.URL.Path,
		At:      mw.clock.Now(),
	}
	for _, s := range mw.stats {
		if err := s.Record(r.Context(), ev); err != nil {
			mw.logger.Error("failed-to-record-admission", err, lager.Data{"key": key})
		}
	}
}

func (mw *RateLimiterMiddleware) retryAfterSeconds(decision Decision) int {
	remaining := decision.ResetTime.Sub(mw.clock.Now()).Seconds()
	if remaining < 1 {
		return 1
	}
	return int(math.Ceil(remaining))
}
