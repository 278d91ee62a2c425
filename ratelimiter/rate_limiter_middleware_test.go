package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/contactform/contactapi/fakes"
	"github.com/contactform/contactapi/ratelimiter"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

type failingStats struct{}

func (failingStats) Record(context.Context, ratelimiter.StatsEvent) error {
	return errors.New("stats unavailable")
}

var _ = Describe("RateLimiterMiddleware", func() {
	var (
		req         *http.Request
		resp        *httptest.ResponseRecorder
		router      *mux.Router
		rateLimiter *fakes.FakeLimiter
		stats       *ratelimiter.MemoryStatsStore
		keyFunc     ratelimiter.KeyFunc
		fakeClock   *fakeclock.FakeClock
		logger      *lagertest.TestLogger
		rlmw        *ratelimiter.RateLimiterMiddleware
	)

	Describe("CheckRateLimit", func() {
		BeforeEach(func() {
			rateLimiter = &fakes.FakeLimiter{}
			stats = ratelimiter.NewMemoryStatsStore(true)
			fakeClock = fakeclock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
			logger = lagertest.NewTestLogger("ratelimiter-middleware")
			keyFunc = ratelimiter.ClientIPKeyFunc(false)
			req = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			req.RemoteAddr = "10.0.0.1:54321"
			resp = httptest.NewRecorder()
		})

		JustBeforeEach(func() {
			rlmw = ratelimiter.NewRateLimiterMiddleware(keyFunc, rateLimiter, fakeClock, logger, stats)
			router = mux.NewRouter()
			router.HandleFunc("/api/contact", GetTestHandler()).Methods(http.MethodPost)
			router.Use(rlmw.CheckRateLimit)
			router.ServeHTTP(resp, req)
		})

		Context("without a key", func() {
			BeforeEach(func() {
				keyFunc = func(*http.Request) string { return "" }
			})
			It("should fail with 400", func() {
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(Equal(`{"success":false,"message":"Missing rate limit key"}`))
				Expect(rateLimiter.AdmitCallCount()).To(Equal(0))
			})
		})

		Context("exceed rate limiting", func() {
			BeforeEach(func() {
				rateLimiter.AdmitReturns(ratelimiter.Decision{
					Allowed:   false,
					Count:     5,
					ResetTime: fakeClock.Now().Add(90*time.Second + 200*time.Millisecond),
				})
			})
			It("should fail with 429", func() {
				Expect(resp.Code).To(Equal(http.StatusTooManyRequests))
				Expect(resp.Body.String()).To(Equal(`{"success":false,"message":"Too many requests. Please try again later."}`))
				Expect(resp.Header().Get("Retry-After")).To(Equal("91"))
				Expect(rateLimiter.AdmitArgsForCall(0)).To(Equal("10.0.0.1"))
				Expect(logger.Buffer()).To(gbytes.Say("error-exceed-rate-limit"))
			})
			It("records the denial", func() {
				Expect(stats.Total()).To(Equal(ratelimiter.Counters{Denied: 1}))
				Expect(stats.ByRoute()).To(HaveKeyWithValue("POST /api/contact", ratelimiter.Counters{Denied: 1}))
				Expect(stats.ByKey()).To(HaveKeyWithValue("10.0.0.1", ratelimiter.Counters{Denied: 1}))
			})
		})

		Context("exceed rate limiting right at the reset", func() {
			BeforeEach(func() {
				rateLimiter.AdmitReturns(ratelimiter.Decision{Allowed: false, Count: 5, ResetTime: fakeClock.Now()})
			})
			It("asks the client to retry after at least one second", func() {
				Expect(resp.Header().Get("Retry-After")).To(Equal("1"))
			})
		})

		Context("below rate limiting", func() {
			BeforeEach(func() {
				rateLimiter.AdmitReturns(ratelimiter.Decision{Allowed: true, Count: 1, ResetTime: fakeClock.Now().Add(time.Minute)})
			})
			It("should succeed with 200", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(resp.Body.String()).To(Equal("Success"))
				Expect(stats.Total()).To(Equal(ratelimiter.Counters{Allowed: 1}))
			})
		})

		Context("when recording stats fails", func() {
			BeforeEach(func() {
				rateLimiter.AdmitReturns(ratelimiter.Decision{Allowed: true, Count: 1})
			})
			JustBeforeEach(func() {
				rlmw = ratelimiter.NewRateLimiterMiddleware(keyFunc, rateLimiter, fakeClock, logger, failingStats{})
				resp = httptest.NewRecorder()
				handler := rlmw.CheckRateLimit(GetTestHandler())
				handler.ServeHTTP(resp, req)
			})
			It("still serves the request", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(logger.Buffer()).To(gbytes.Say("failed-to-record-admission"))
			})
		})
	})
})

func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("Success"))
		Expect(err).NotTo(HaveOccurred())
	}
}
